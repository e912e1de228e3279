package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfleet/fleettrack/internal/pkg/constants"
	"github.com/openfleet/fleettrack/internal/pkg/models"
)

const testSecret = "manager-test-secret"

func testManager() *Manager {
	return NewManager(models.JWTConfig{Secret: testSecret})
}

func signTestToken(t *testing.T, secret, userID, role string) string {
	t.Helper()

	claims := &models.WebSocketClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// newManagerServer exposes the manager on a real echo server so tests can
// exercise the full handshake with a websocket dialer.
func newManagerServer(t *testing.T, m *Manager, handleClient func(*models.WebSocketClient, *websocket.Conn) error) *httptest.Server {
	t.Helper()

	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		return m.HandleConnection(c, handleClient)
	})

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server
}

func dialManager(server *httptest.Server, token string) (*websocket.Conn, *http.Response, error) {
	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	return websocket.DefaultDialer.Dial(url, header)
}

func TestNewManager(t *testing.T) {
	m := testManager()

	assert.NotNil(t, m)
	assert.NotNil(t, m.clients)
}

func TestHandleConnection_MissingAuthHeader(t *testing.T) {
	m := testManager()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.HandleConnection(c, func(*models.WebSocketClient, *websocket.Conn) error {
		t.Fatal("handleClient must not run without credentials")
		return nil
	})

	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestHandleConnection_InvalidAuthFormat(t *testing.T) {
	m := testManager()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.HandleConnection(c, func(*models.WebSocketClient, *websocket.Conn) error {
		return nil
	})

	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestHandleConnection_InvalidToken(t *testing.T) {
	m := testManager()

	tests := []struct {
		name  string
		token string
	}{
		{name: "Garbage token", token: "not-a-jwt"},
		{name: "Wrong secret", token: signTestToken(t, "some-other-secret", "user-1", "driver")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := m.HandleConnection(c, func(*models.WebSocketClient, *websocket.Conn) error {
				return nil
			})

			require.Error(t, err)
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		})
	}
}

func TestHandleConnection_RejectsHandshakeWithoutToken(t *testing.T) {
	m := testManager()
	server := newManagerServer(t, m, func(*models.WebSocketClient, *websocket.Conn) error {
		return nil
	})

	conn, resp, err := dialManager(server, "")

	require.Error(t, err)
	assert.Nil(t, conn)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleConnection_ValidToken(t *testing.T) {
	m := testManager()

	connected := make(chan *models.WebSocketClient, 1)
	server := newManagerServer(t, m, func(client *models.WebSocketClient, conn *websocket.Conn) error {
		connected <- client
		// hold the connection until the peer closes
		_, _, _ = conn.ReadMessage()
		return nil
	})

	token := signTestToken(t, testSecret, "user-42", "manager")
	conn, resp, err := dialManager(server, token)
	require.NoError(t, err)
	defer resp.Body.Close()

	select {
	case client := <-connected:
		assert.Equal(t, "user-42", client.UserID)
		assert.Equal(t, "manager", client.Role)
		_, exists := m.GetClient("user-42")
		assert.True(t, exists)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for connection")
	}

	conn.Close()

	// the client registration is torn down once the handler returns
	assert.Eventually(t, func() bool {
		_, exists := m.GetClient("user-42")
		return !exists
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAddRemoveGetClient(t *testing.T) {
	m := testManager()
	client := &models.WebSocketClient{UserID: "user-1", Role: "driver"}

	m.AddClient(client)
	got, exists := m.GetClient("user-1")
	require.True(t, exists)
	assert.Equal(t, client, got)

	m.RemoveClient("user-1")
	_, exists = m.GetClient("user-1")
	assert.False(t, exists)
}

func TestSendMessage_NilConn(t *testing.T) {
	m := testManager()
	client := &models.WebSocketClient{UserID: "user-1"}

	assert.NoError(t, m.SendMessage(client, nil, constants.EventPong, nil))
}

func TestSendMessage_UnmarshalableData(t *testing.T) {
	m := testManager()
	client := &models.WebSocketClient{UserID: "user-1"}

	server := newManagerServer(t, m, func(client *models.WebSocketClient, conn *websocket.Conn) error {
		_, _, _ = conn.ReadMessage()
		return nil
	})

	token := signTestToken(t, testSecret, "user-9", "driver")
	conn, resp, err := dialManager(server, token)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	assert.Error(t, m.SendMessage(client, conn, "event", make(chan int)))
}

func TestSendMessage_RoundTrip(t *testing.T) {
	m := testManager()

	payload := map[string]string{"vehicle_id": "vehicle-123"}
	server := newManagerServer(t, m, func(client *models.WebSocketClient, conn *websocket.Conn) error {
		if err := m.SendMessage(client, conn, constants.EventTrackingSnapshot, payload); err != nil {
			return err
		}
		return m.SendErrorMessage(client, conn, constants.ErrCodeInvalidPayload, "bad payload")
	})

	token := signTestToken(t, testSecret, "user-7", "manager")
	conn, resp, err := dialManager(server, token)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var first models.WSMessage
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, constants.EventTrackingSnapshot, first.Event)

	var data map[string]string
	require.NoError(t, json.Unmarshal(first.Data, &data))
	assert.Equal(t, "vehicle-123", data["vehicle_id"])

	var second models.WSMessage
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, constants.EventError, second.Event)

	var wsErr models.WSErrorMessage
	require.NoError(t, json.Unmarshal(second.Data, &wsErr))
	assert.Equal(t, constants.ErrCodeInvalidPayload, wsErr.Code)
	assert.Equal(t, "bad payload", wsErr.Message)
}
