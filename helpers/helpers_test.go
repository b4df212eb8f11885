package helpers

import (
	"net/url"
	"sync"
	"testing"
	"time"

	"go-street-kiosk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()
	tokens := NewTokenHelper("secret", time.Hour)
	signed, expiresAt, err := tokens.GenerateToken(AdminRole)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := tokens.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, AdminRole, claims.Role)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()
	signed, _, err := NewTokenHelper("secret", time.Hour).GenerateToken(AdminRole)
	require.NoError(t, err)

	_, err = NewTokenHelper("other", time.Hour).ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokenHelper("secret", time.Hour).ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpiry(t *testing.T) {
	t.Parallel()
	now := time.Now()
	tokens := NewTokenHelper("secret", time.Minute).WithClock(func() time.Time { return now })
	signed, _, err := tokens.GenerateToken(AdminRole)
	require.NoError(t, err)

	_, err = tokens.ValidateToken(signed)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = tokens.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswords(t *testing.T) {
	t.Parallel()
	hash, err := HashPassword("kopi-o")
	require.NoError(t, err)
	assert.True(t, VerifyPassword("kopi-o", hash))
	assert.False(t, VerifyPassword("teh-o", hash))
	assert.False(t, VerifyPassword("kopi-o", ""))

	same, err := AdminHash(hash, "ignored")
	require.NoError(t, err)
	assert.Equal(t, hash, same)

	fromPlain, err := AdminHash("", "kopi-o")
	require.NoError(t, err)
	assert.True(t, VerifyPassword("kopi-o", fromPlain))

	_, err = AdminHash("", "")
	assert.ErrorIs(t, err, ErrNoAdminPassword)

	_, err = AdminHash("not-bcrypt", "")
	assert.Error(t, err)
}

func TestOrderIDsAreMonotonicWithinOneSecond(t *testing.T) {
	t.Parallel()
	fixed := time.Unix(1709600000, 0)
	ids := NewOrderIDGenerator(func() time.Time { return fixed })
	assert.Equal(t, int64(1709600000), ids.Next())
	assert.Equal(t, int64(1709600001), ids.Next())
	assert.Equal(t, int64(1709600002), ids.Next())
}

func TestOrderIDsConcurrent(t *testing.T) {
	t.Parallel()
	ids := NewOrderIDGenerator(nil)
	seen := make(map[int64]bool)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := ids.Next()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 50)
}

func TestConfirmationLink(t *testing.T) {
	t.Parallel()
	order := models.NewOrder(42, time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC), "Aisyah (Dine-in)",
		[]models.LineItem{models.NewLineItem("Nasi Lemak", 2, 5)})

	note := ConfirmationLink("Street Vibes", "+60 12-345 6789", order)
	assert.Equal(t, "60123456789", note.Phone)
	assert.Equal(t, int64(42), note.OrderID)

	parsed, err := url.Parse(note.Link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/60123456789", parsed.Path)
	assert.Equal(t, "Street Vibes order #42 for Aisyah (Dine-in): 2x Nasi Lemak. Total $10.00", parsed.Query().Get("text"))
	assert.Equal(t, note.Message, parsed.Query().Get("text"))
}
