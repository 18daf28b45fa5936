package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/actuallystonmai/stylesense-service/internal/domain"
	"github.com/actuallystonmai/stylesense-service/seeds"
)

func init() {
	hashCost = bcrypt.MinCost
}

func newNamespace(t *testing.T) (*Store, *Namespace) {
	t.Helper()
	s := New(NewMemory())
	return s, s.Client("client-1")
}

func TestValidClientID(t *testing.T) {
	assert.True(t, ValidClientID("abc-123_XYZ"))
	assert.False(t, ValidClientID(""))
	assert.False(t, ValidClientID("has space"))
	assert.False(t, ValidClientID("glob*"))
	assert.False(t, ValidClientID(string(make([]byte, 65))))
}

func TestSessionSignupLoginLogout(t *testing.T) {
	ctx := context.Background()
	_, ns := newNamespace(t)

	sess, err := LoadSession(ctx, ns)
	require.NoError(t, err)
	assert.Nil(t, sess.User())

	u, err := sess.Signup(ctx, SignupInput{
		Name:        "Asha",
		Email:       "Asha@Example.com ",
		Password:    "secret",
		Gender:      domain.GenderFemale,
		Preferences: []string{"Minimalist"},
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", u.Email)
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.JoinedAt.IsZero())

	// a fresh load sees the persisted session
	reloaded, err := LoadSession(ctx, ns)
	require.NoError(t, err)
	require.NotNil(t, reloaded.User())
	assert.Equal(t, u.ID, reloaded.User().ID)
	assert.Equal(t, domain.GenderFemale, reloaded.Gender())

	require.NoError(t, reloaded.Logout(ctx))
	assert.Nil(t, reloaded.User())

	reloaded, err = LoadSession(ctx, ns)
	require.NoError(t, err)
	assert.Nil(t, reloaded.User())

	_, err = reloaded.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = reloaded.Login(ctx, "nobody@example.com", "secret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	logged, err := reloaded.Login(ctx, "ASHA@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
	assert.Equal(t, []string{"Minimalist"}, logged.Preferences)
}

func TestSessionSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	_, ns := newNamespace(t)
	sess, err := LoadSession(ctx, ns)
	require.NoError(t, err)

	in := SignupInput{Name: "Ravi", Email: "ravi@example.com", Password: "pw", Gender: domain.GenderMale}
	_, err = sess.Signup(ctx, in)
	require.NoError(t, err)

	_, err = sess.Signup(ctx, in)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestSessionSignupValidation(t *testing.T) {
	ctx := context.Background()
	_, ns := newNamespace(t)
	sess, err := LoadSession(ctx, ns)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   SignupInput
	}{
		{"no name", SignupInput{Email: "a@b.c", Password: "pw", Gender: domain.GenderOther}},
		{"bad email", SignupInput{Name: "A", Email: "nope", Password: "pw", Gender: domain.GenderOther}},
		{"no password", SignupInput{Name: "A", Email: "a@b.c", Gender: domain.GenderOther}},
		{"bad gender", SignupInput{Name: "A", Email: "a@b.c", Password: "pw", Gender: "robot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sess.Signup(ctx, tt.in)
			var ve *domain.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestWardrobe(t *testing.T) {
	ctx := context.Background()
	_, ns := newNamespace(t)
	w := ns.Wardrobe()

	items, err := w.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	shirt, err := w.Add(ctx, domain.WardrobeItem{Name: " Oxford shirt ", Color: "White"})
	require.NoError(t, err)
	assert.Equal(t, "Tops", shirt.Category)
	assert.Equal(t, "Oxford shirt", shirt.Name)

	shoes, err := w.Add(ctx, domain.WardrobeItem{Name: "Loafers", Color: "Brown", Category: "Shoes"})
	require.NoError(t, err)

	_, err = w.Add(ctx, domain.WardrobeItem{Name: "Hat"})
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = w.Add(ctx, domain.WardrobeItem{Name: "Cape", Color: "Red", Category: "Capes"})
	assert.ErrorAs(t, err, &ve)

	tops, err := w.ByCategory(ctx, "Tops")
	require.NoError(t, err)
	assert.Equal(t, []domain.WardrobeItem{shirt}, tops)

	require.NoError(t, w.Remove(ctx, shirt.ID))
	assert.ErrorIs(t, w.Remove(ctx, shirt.ID), domain.ErrNotFound)

	items, err = w.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.WardrobeItem{shoes}, items)
}

func TestSavedOutfits(t *testing.T) {
	ctx := context.Background()
	_, ns := newNamespace(t)
	saved := ns.SavedOutfits()

	outfits, err := saved.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seeds.DemoOutfits(), outfits)

	office, err := saved.Collection(ctx, "Office Wear")
	require.NoError(t, err)
	require.Len(t, office, 1)
	assert.Equal(t, "Business Meeting Outfit", office[0].Title)

	all, err := saved.Collection(ctx, domain.AllOutfits)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	added, err := saved.Add(ctx, domain.SavedOutfit{Title: "Beach day", Description: "Linen set", Occasion: "Travel"})
	require.NoError(t, err)
	assert.NotEmpty(t, added.SavedAt)

	travel, err := saved.Collection(ctx, "Travel")
	require.NoError(t, err)
	assert.Equal(t, []domain.SavedOutfit{added}, travel)

	for _, o := range seeds.DemoOutfits() {
		require.NoError(t, saved.Remove(ctx, o.ID))
	}
	require.NoError(t, saved.Remove(ctx, added.ID))

	outfits, err = saved.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, outfits, "removing every outfit must not bring the demo data back")

	_, err = saved.Add(ctx, domain.SavedOutfit{Title: "No description"})
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestQuizResultAndReset(t *testing.T) {
	ctx := context.Background()
	s, ns := newNamespace(t)
	other := s.Client("client-2")

	last, err := ns.LastQuizResult(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	result := domain.QuizResult{Style: "classic", StyleDescription: domain.StyleDescriptions["classic"], Advice: "Buy a blazer"}
	require.NoError(t, ns.SaveQuizResult(ctx, result))
	require.NoError(t, other.SaveQuizResult(ctx, result))

	last, err = ns.LastQuizResult(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, result, *last)

	require.NoError(t, ns.Reset(ctx))

	last, err = ns.LastQuizResult(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	last, err = other.LastQuizResult(ctx)
	require.NoError(t, err)
	assert.NotNil(t, last, "reset is scoped to one client")
}
