//go:build !windows

package environment

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

func watchResize(onResize func()) (func(), error) {
	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(signals, syscall.SIGWINCH)

	go func() {
		for {
			select {
			case <-signals:
				onResize()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(signals)
			close(done)
		})
	}, nil
}
