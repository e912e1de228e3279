package websocket

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats-server/v2/server"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/stretchr/testify/require"

	"github.com/openfleet/fleettrack/internal/pkg/models"
)

var (
	testNatsServer *server.Server
	testNatsURL    = "nats://127.0.0.1:8370"
)

func TestMain(m *testing.M) {
	testNatsServer = runServerOnPort(8370)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func runServerOnPort(port int) *server.Server {
	opts := natsserver.DefaultTestOptions
	opts.Port = port
	return natsserver.RunServer(&opts)
}

const testJWTSecret = "tracking-socket-secret"

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.JWT.Secret = testJWTSecret
	cfg.Tracking.StaleThresholdSeconds = 300
	cfg.Tracking.CheckIntervalSeconds = 1
	return cfg
}

func signToken(t *testing.T, userID, role string) string {
	t.Helper()

	claims := &models.WebSocketClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func newSocketServer(t *testing.T, h *WebSocketHandler) *httptest.Server {
	t.Helper()

	e := echo.New()
	e.GET("/ws/drivers", h.HandleDriverConnection)
	e.GET("/ws/watch", h.HandleWatchConnection)
	e.GET("/ws/watch/:id", h.HandleWatchConnection)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server
}

func dialSocket(t *testing.T, server *httptest.Server, path, token string) *websocket.Conn {
	t.Helper()

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + path

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) models.WSMessage {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}
