package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attrs map[string]string

func (a attrs) SetAttribute(name, value string) { a[name] = value }

type failingStore struct{ loadErr, saveErr error }

func (f failingStore) Load() (string, error) { return "", f.loadErr }
func (f failingStore) Save(string) error { return f.saveErr }

type fakeJar map[string]string

func (j fakeJar) GetCookie(name string) (string, error) {
	v, ok := j[name]
	if !ok {
		return "", errors.New("cookie not found")
	}
	return v, nil
}

func (j fakeJar) SetCookie(name, value string) error {
	j[name] = value
	return nil
}

func TestInitWithEmptyStoreAppliesAndPersistsDefault(t *testing.T) {
	store := NewMemoryStore("")
	doc := attrs{}
	c := NewController(DefaultCatalog, store, doc)

	require.NoError(t, c.Init())
	assert.Equal(t, "dark", c.Current().Value)
	assert.Equal(t, "dark", doc[Attribute])

	v, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", v, "a subsequent read sees the default")
}

func TestInitWithInvalidStoredValue(t *testing.T) {
	store := NewMemoryStore("neon")
	doc := attrs{}
	c := NewController(DefaultCatalog, store, doc)

	require.NoError(t, c.Init())
	assert.Equal(t, "dark", doc[Attribute])
	v, _ := store.Load()
	assert.Equal(t, "dark", v)
}

func TestInitWithValidStoredValueDoesNotRewrite(t *testing.T) {
	store := NewMemoryStore("green")
	c := NewController(DefaultCatalog, store, attrs{})

	require.NoError(t, c.Init())
	assert.Equal(t, "Green", c.Current().Name)
	assert.Zero(t, store.Saves())
}

func TestInitSurvivesUnreadableStore(t *testing.T) {
	c := NewController(DefaultCatalog, failingStore{loadErr: errors.New("disk gone")}, attrs{})
	require.NoError(t, c.Init())
	assert.Equal(t, "dark", c.Current().Value)
}

func TestSelect(t *testing.T) {
	store := NewMemoryStore("")
	doc := attrs{}
	c := NewController(DefaultCatalog, store, doc)
	require.NoError(t, c.Init())

	c.ToggleMenu()
	require.True(t, c.MenuOpen())
	require.NoError(t, c.Select("red"))
	assert.False(t, c.MenuOpen())
	assert.Equal(t, "red", doc[Attribute])
	v, _ := store.Load()
	assert.Equal(t, "red", v)

	// unknown values fall back to the default and never fail
	require.NoError(t, c.Select("<script>"))
	assert.Equal(t, "dark", c.Current().Value)
	assert.Equal(t, "dark", doc[Attribute])
}

func TestSelectReportsStorageFailureButApplies(t *testing.T) {
	doc := attrs{}
	c := NewController(DefaultCatalog, failingStore{saveErr: errors.New("read-only")}, doc)

	err := c.Select("blue")
	assert.Error(t, err)
	assert.Equal(t, "blue", doc[Attribute])
}

func TestCatalog(t *testing.T) {
	assert.Equal(t, "dark", DefaultCatalog.Default().Value)
	assert.Equal(t, "dark", Catalog(nil).Default().Value)
	assert.Equal(t, "yellow", DefaultCatalog.Resolve("yellow").Value)
	assert.Equal(t, "dark", DefaultCatalog.Resolve("purple").Value)
	_, ok := DefaultCatalog.Lookup("purple")
	assert.False(t, ok)
}

func TestCookieStore(t *testing.T) {
	jar := fakeJar{}
	s := CookieStore{Jar: jar}

	v, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Save("light"))
	assert.Equal(t, "light", jar[StorageKey])
	v, _ = s.Load()
	assert.Equal(t, "light", v)
}

func TestChainReadsFirstNonEmptyAndWritesAll(t *testing.T) {
	a := NewMemoryStore("")
	b := NewMemoryStore("blue")
	chain := Chain{a, b}

	v, err := chain.Load()
	require.NoError(t, err)
	assert.Equal(t, "blue", v)

	require.NoError(t, chain.Save("green"))
	va, _ := a.Load()
	vb, _ := b.Load()
	assert.Equal(t, "green", va)
	assert.Equal(t, "green", vb)
}

func TestInitSkipsInvalidValueEarlierInChain(t *testing.T) {
	cookie := NewMemoryStore("neon")
	prefs := NewMemoryStore("red")
	doc := attrs{}
	c := NewController(DefaultCatalog, Chain{cookie, prefs}, doc)

	require.NoError(t, c.Init())
	assert.Equal(t, "red", doc[Attribute])

	v, _ := cookie.Load()
	assert.Equal(t, "red", v, "the junk value is replaced by the valid one")
	v, _ = prefs.Load()
	assert.Equal(t, "red", v)
}

func TestInitWithAgreeingChainDoesNotRewrite(t *testing.T) {
	cookie := NewMemoryStore("blue")
	prefs := NewMemoryStore("blue")
	c := NewController(DefaultCatalog, Chain{cookie, prefs}, attrs{})

	require.NoError(t, c.Init())
	assert.Equal(t, "blue", c.Current().Value)
	assert.Zero(t, cookie.Saves())
	assert.Zero(t, prefs.Saves())
}

func TestChainLoadValid(t *testing.T) {
	accept := func(v string) bool { return v == "green" }

	v, stale, err := Chain{failingStore{loadErr: errors.New("gone")}, NewMemoryStore("green")}.LoadValid(accept)
	require.NoError(t, err)
	assert.Equal(t, "green", v)
	assert.True(t, stale)

	v, stale, err = Chain{NewMemoryStore("neon"), NewMemoryStore("")}.LoadValid(accept)
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.True(t, stale)
}

func TestPreferencesPerVisitor(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DuckDB test in short mode")
	}

	prefs, err := OpenPreferences("")
	require.NoError(t, err)
	defer prefs.Close()

	alice := prefs.ForVisitor("alice")
	bob := prefs.ForVisitor("bob")

	v, err := alice.Load()
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, alice.Save("blue"))
	require.NoError(t, alice.Save("red"))
	require.NoError(t, bob.Save("light"))

	v, err = alice.Load()
	require.NoError(t, err)
	assert.Equal(t, "red", v)

	v, err = bob.Load()
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}
