package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
)

var (
	testCollection = domain.MustParseAddress("0x00000000000000000000000000000000000000c1")
	testBuyer      = domain.MustParseAddress("0x00000000000000000000000000000000000000b1")
	testCurrency   = domain.MustParseAddress("0x00000000000000000000000000000000000000a1")
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendSync(ctx context.Context, mq ...*primitive.Message) (*primitive.SendResult, error) {
	args := m.Called(ctx, mq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*primitive.SendResult), args.Error(1)
}

func (m *mockSender) Shutdown() error {
	return m.Called().Error(0)
}

type recordingSink struct {
	listings  []domain.ListingChanged
	purchases []domain.Purchased
	err       error
}

func (r *recordingSink) ListingChanged(_ context.Context, ev domain.ListingChanged) error {
	r.listings = append(r.listings, ev)
	return r.err
}

func (r *recordingSink) Purchased(_ context.Context, ev domain.Purchased) error {
	r.purchases = append(r.purchases, ev)
	return r.err
}

func TestRocketMQSink_Purchased(t *testing.T) {
	sender := new(mockSender)
	sink := newRocketMQSink("market-events", sender)
	ctx := context.Background()

	sender.On("SendSync", ctx, mock.MatchedBy(func(msgs []*primitive.Message) bool {
		if len(msgs) != 1 {
			return false
		}
		msg := msgs[0]
		var env map[string]any
		if err := json.Unmarshal(msg.Body, &env); err != nil {
			return false
		}
		return msg.Topic == "market-events" &&
			msg.GetTags() == EventPurchased &&
			msg.GetProperty("collection") == testCollection.String() &&
			env["event"] == EventPurchased
	})).Return(&primitive.SendResult{Status: primitive.SendOK}, nil).Once()

	err := sink.Purchased(ctx, domain.Purchased{
		Buyer:      testBuyer,
		Collection: testCollection,
		Tokens:     []domain.TokenID{1, 2},
		Currency:   testCurrency,
		Total:      decimal.NewFromInt(300),
	})

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestRocketMQSink_SendErrorAndClose(t *testing.T) {
	sender := new(mockSender)
	sink := newRocketMQSink("market-events", sender)
	ctx := context.Background()

	sender.On("SendSync", ctx, mock.Anything).Return(nil, errors.New("broker down")).Once()
	err := sink.ListingChanged(ctx, domain.ListingChanged{Added: true, Collection: testCollection, Tokens: []domain.TokenID{1}})
	assert.ErrorContains(t, err, "broker down")

	sender.On("Shutdown").Return(nil).Once()
	require.NoError(t, sink.Close())
	require.NoError(t, sink.Close())

	err = sink.ListingChanged(ctx, domain.ListingChanged{Collection: testCollection})
	assert.ErrorContains(t, err, "not ready")
	sender.AssertExpectations(t)
}

func TestFanout_DeliversToAllAndJoinsErrors(t *testing.T) {
	ok := &recordingSink{}
	failing := &recordingSink{err: errors.New("sink offline")}
	fan := Fanout{failing, ok}

	err := fan.ListingChanged(context.Background(), domain.ListingChanged{Added: false, Collection: testCollection, Tokens: []domain.TokenID{4}})

	assert.ErrorContains(t, err, "sink offline")
	assert.Len(t, ok.listings, 1)
	assert.Len(t, failing.listings, 1)
	assert.NoError(t, Fanout{ok}.Purchased(context.Background(), domain.Purchased{Collection: testCollection}))
}

func TestHub_StreamsEventsToSubscribers(t *testing.T) {
	hub := NewHub(slog.Default(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWS(w, r)
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.ListingChanged(ctx, domain.ListingChanged{Added: true, Collection: testCollection, Tokens: []domain.TokenID{7}}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var env struct {
		Event   string                `json:"event"`
		Payload domain.ListingChanged `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(payload, &env))
	assert.Equal(t, EventListingChanged, env.Event)
	assert.True(t, env.Payload.Added)
	assert.Equal(t, testCollection, env.Payload.Collection)
	assert.Equal(t, []domain.TokenID{7}, env.Payload.Tokens)
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://market.example"})

	allowed := httptest.NewRequest(http.MethodGet, "/", nil)
	allowed.Header.Set("Origin", "https://market.example")
	denied := httptest.NewRequest(http.MethodGet, "/", nil)
	denied.Header.Set("Origin", "https://evil.example")

	assert.True(t, check(allowed))
	assert.False(t, check(denied))
	assert.True(t, originChecker([]string{"*"})(denied))
}
