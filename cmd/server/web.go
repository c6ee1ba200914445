package main

import (
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// webServer wires up the status page, the websocket progress endpoint and
// the rendered image.
func webServer(addr string, state *renderState) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", indexHandler)
	mux.HandleFunc("/ws", progressHandler(state))
	mux.HandleFunc("/image", imageHandler(state))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// progressHandler upgrades to a websocket and streams progress events until
// the render completes or the client goes away.
func progressHandler(state *renderState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		events, cancel := state.subscribe()
		defer cancel()

		ctx := r.Context()
		for {
			select {
			case ev := <-events:
				if err := wsjson.Write(ctx, c, ev); err != nil {
					return
				}
				if ev.Type == "complete" {
					c.Close(websocket.StatusNormalClosure, "render complete")
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}
}

// imageHandler serves the finished render as PNG.
func imageHandler(state *renderState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img := state.image()
		if img == nil {
			http.Error(w, "render in progress", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, img); err != nil {
			log.Printf("encode image: %v", err)
		}
	}
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>mandelbrot</title></head>
<body style="background:#1e1e2e;color:#ddd;font-family:monospace">
<p id="status">connecting...</p>
<img id="img" style="max-width:100%">
<script>
const status = document.getElementById("status");
const img = document.getElementById("img");
const proto = location.protocol === "https:" ? "wss" : "ws";
const ws = new WebSocket(proto + "://" + location.host + "/ws");
ws.onmessage = (msg) => {
	const ev = JSON.parse(msg.data);
	if (ev.type === "strip") {
		status.textContent = "strips done: " + ev.done + "/" + ev.total;
	} else if (ev.type === "palette") {
		status.textContent = "palette built with " + ev.size + " colours";
	} else if (ev.type === "complete") {
		status.textContent = "render complete";
		img.src = "/image";
	}
};
ws.onclose = () => { if (!img.src) status.textContent = "connection closed"; };
</script>
</body>
</html>
`
