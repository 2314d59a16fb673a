package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (a *API) listNotifications(c *gin.Context) {
	identity := identityFrom(c)
	center := a.notifications.Center(identity.UserID)
	c.JSON(http.StatusOK, gin.H{
		"notifications": center.List(),
		"unread_count":  center.UnreadCount(),
	})
}

func (a *API) markNotificationRead(c *gin.Context) {
	identity := identityFrom(c)
	a.notifications.Center(identity.UserID).MarkRead(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (a *API) markAllNotificationsRead(c *gin.Context) {
	identity := identityFrom(c)
	a.notifications.Center(identity.UserID).MarkAllRead()
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

func (a *API) clearNotifications(c *gin.Context) {
	identity := identityFrom(c)
	a.notifications.Center(identity.UserID).Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Notifications cleared"})
}

// notificationsSocket upgrades the connection and registers it with the
// hub. The read loop exists only to detect the client going away.
func (a *API) notificationsSocket(c *gin.Context) {
	identity := identityFrom(c)

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		a.log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	a.hub.Register(identity.UserID, conn)
	go func() {
		defer a.hub.Unregister(identity.UserID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
