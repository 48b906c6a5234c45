package compiler

// semaphore bounds the number of concurrently parsing goroutines.
type semaphore struct {
	slots chan bool
}

func newSemaphore(v int) *semaphore {
	return &semaphore{
		slots: make(chan bool, v),
	}
}

func (s *semaphore) Lock() {
	s.slots <- false
}

func (s *semaphore) Unlock() {
	<-s.slots
}
