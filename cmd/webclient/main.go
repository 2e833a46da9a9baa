//go:build js && wasm

// webclient is the browser side of the Mandelbrot server.
// It serves mandel.Display over a websocket: it reports the held keys and the window size, and draws the frames the server renders.

package main

import (
	"context"
	"fmt"
	"log"
	"syscall/js"

	"github.com/marben/irpc"
	mandel "github.com/marben/mandel_viewer"
)

func main() {
	logScreenf("Starting WASM web client...")

	// Figure out the server address to open WebSocket
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + host + "/ws"

	logScreenf("Connecting to Mandelbrot server at %s...", websocketUrl)
	websocket := js.Global().Get("WebSocket").New(websocketUrl)
	websocketRWC := NewWSReadWriteCloser(websocket)

	// the server drives the display, we only answer its calls
	display := newCanvasDisplay("myCanvas")
	defer display.Close()
	endpoint := irpc.NewEndpoint(websocketRWC, irpc.WithEndpointServices(mandel.NewDisplayIrpcService(display)))
	logScreenf("IRPC endpoint created.")

	<-endpoint.Context().Done()
	display.SetTitle("Mandelbrot | disconnected")
	logScreenf("Disconnected: %v", context.Cause(endpoint.Context()))
}

// logScreenf appends a formatted message to the log element in the DOM.
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	log.Println(msg)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// clearScreenLog empties the log element once frames cover the page.
func clearScreenLog() {
	js.Global().Get("document").Call("getElementById", "log").Set("textContent", "")
}
