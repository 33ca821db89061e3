package controllers

import (
	"net/http"
	"time"

	"github.com/ITECH-Group8/WellLog/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type FeedController struct {
	feed *services.FeedHub
}

func NewFeedController(feed *services.FeedHub) *FeedController {
	return &FeedController{feed: feed}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// FeedWS upgrades the connection and subscribes the caller to community
// events until the client disconnects.
func (fc *FeedController) FeedWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.FeedClient{UserID: uid, Conn: conn}
	fc.feed.Register(cl)

	// ping to keep connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := cl.Send(websocket.PingMessage, nil); err != nil {
				fc.feed.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			fc.feed.Unregister(cl)
			return
		}
	}
}
