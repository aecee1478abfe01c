package runtimer

import (
	"os"
	"os/signal"
)

type Callback func(s os.Signal)

// New starts listening for the given signals. Callbacks registered before the first signal arrives run in
// registration order, exactly once.
func New(signals ...os.Signal) *SignalHandler {
	c := make(chan os.Signal, 1)
	signal.Notify(c, signals...)

	sh := &SignalHandler{
		c:    c,
		done: make(chan struct{}),
	}

	go sh.handle()

	return sh
}

type SignalHandler struct {
	c    chan os.Signal
	done chan struct{}
	fns  []Callback
}

func (sh *SignalHandler) handle() {
	defer func() {
		sh.done <- struct{}{}
	}()

	s := <-sh.c
	signal.Stop(sh.c)
	close(sh.c)

	for _, fn := range sh.fns {
		fn(s)
	}
}

func (sh *SignalHandler) RegisterCallback(fn Callback) {
	sh.fns = append(sh.fns, fn)
}

// Wait blocks until all callbacks have been called
func (sh *SignalHandler) Wait() {
	<-sh.done
	close(sh.done)
}
