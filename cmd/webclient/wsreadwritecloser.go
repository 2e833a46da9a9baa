//go:build js && wasm

package main

import (
	"errors"
	"io"
	"sync"
	"syscall/js"
)

// WSReadWriteCloser is an io.ReadWriteCloser over a browser WebSocket.
// Every Write is sent as one binary message; Read hands out the bytes of
// received messages in order, across message boundaries.
type WSReadWriteCloser struct {
	ws    js.Value
	funcs []js.Func

	mu     sync.Mutex // js events fire between Go calls
	closed bool
	err    error // why the socket is unusable

	readCh   chan []byte
	openCh   chan struct{} // closed when connected or failed
	done     chan struct{} // closed with the socket
	openOnce sync.Once

	// rest of the message being read
	buf []byte
}

func NewWSReadWriteCloser(ws js.Value) *WSReadWriteCloser {
	c := &WSReadWriteCloser{
		ws:     ws,
		readCh: make(chan []byte, 16),
		openCh: make(chan struct{}),
		done:   make(chan struct{}),
	}

	ws.Set("binaryType", "arraybuffer")

	c.on("onopen", func(js.Value) {
		c.openOnce.Do(func() { close(c.openCh) })
	})
	c.on("onerror", func(js.Value) {
		c.shutdown(io.ErrUnexpectedEOF)
	})
	c.on("onmessage", func(ev js.Value) {
		b, err := jsDataToBytes(ev.Get("data"))
		if err != nil {
			logScreenf("dropping websocket message: %v", err)
			return
		}
		// blocks the js event loop while the reader is behind
		select {
		case c.readCh <- b:
		case <-c.done:
		}
	})
	c.on("onclose", func(ev js.Value) {
		logScreenf("websocket closed: code %d %s", ev.Get("code").Int(), ev.Get("reason").String())
		c.shutdown(io.EOF)
	})

	return c
}

func (c *WSReadWriteCloser) on(handler string, f func(ev js.Value)) {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		f(args[0])
		return nil
	})
	c.ws.Set(handler, fn)
	c.funcs = append(c.funcs, fn)
}

// shutdown marks the socket unusable. The first cause wins.
func (c *WSReadWriteCloser) shutdown(cause error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.err = cause
	c.mu.Unlock()

	c.openOnce.Do(func() { close(c.openCh) })
	close(c.done)
}

func (c *WSReadWriteCloser) Read(p []byte) (int, error) {
	for len(c.buf) == 0 {
		select {
		case msg := <-c.readCh:
			c.buf = msg
		case <-c.done:
			// messages received before the close still count
			select {
			case msg := <-c.readCh:
				c.buf = msg
			default:
				return 0, io.EOF
			}
		}
	}

	n := copy(p, c.buf)
	c.buf = c.buf[n:]
	return n, nil
}

func (c *WSReadWriteCloser) Write(p []byte) (int, error) {
	<-c.openCh

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		if errors.Is(c.err, io.ErrUnexpectedEOF) {
			return 0, c.err
		}
		return 0, io.ErrClosedPipe
	}

	u8 := js.Global().Get("Uint8Array").New(len(p))
	js.CopyBytesToJS(u8, p)
	c.ws.Call("send", u8)
	return len(p), nil
}

// Close closes the socket and releases its event handlers.
func (c *WSReadWriteCloser) Close() error {
	c.shutdown(io.ErrClosedPipe)

	for _, handler := range []string{"onopen", "onerror", "onmessage", "onclose"} {
		c.ws.Set(handler, js.Null())
	}
	for _, fn := range c.funcs {
		fn.Release()
	}
	c.funcs = nil

	c.ws.Call("close")
	return nil
}

// jsDataToBytes copies the data of a message event into Go memory.
func jsDataToBytes(data js.Value) ([]byte, error) {
	// Uint8Array / Uint8ClampedArray
	if data.InstanceOf(js.Global().Get("Uint8Array")) ||
		data.InstanceOf(js.Global().Get("Uint8ClampedArray")) {
		b := make([]byte, data.Get("byteLength").Int())
		js.CopyBytesToGo(b, data)
		return b, nil
	}

	// ArrayBuffer, as requested by binaryType
	if data.InstanceOf(js.Global().Get("ArrayBuffer")) {
		u8 := js.Global().Get("Uint8Array").New(data)
		b := make([]byte, u8.Get("byteLength").Int())
		js.CopyBytesToGo(b, u8)
		return b, nil
	}

	return nil, errors.New("unsupported websocket data type: " + data.Type().String())
}
