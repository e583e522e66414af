package i18n_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dotlocale/pkg/i18n"
	"github.com/dmitrymomot/dotlocale/pkg/plural"
)

var enTree = map[string]any{
	"greeting": "Hello",
	"messages": map[string]any{
		"status": map[string]any{
			"online":  "Online",
			"offline": "Offline",
		},
	},
	"pages": []any{
		map[string]any{"title": "Home", "content": "Welcome home"},
		map[string]any{"title": "About", "content": "About us"},
	},
	"sections": map[string]any{
		"intro": "Introduction",
	},
	"items": map[string]any{
		"apple": map[string]any{
			"one":   "{{count}} apple",
			"other": "{{count}} apples",
		},
		"only_one": map[string]any{
			"one": "exactly one",
		},
	},
	"explicit_null_key": nil,
	"settings": map[string]any{
		"enabled": true,
		"retries": 3,
		"ratio":   0.5,
	},
}

var ruTree = map[string]any{
	"greeting": "Привет",
	"messages": map[string]any{
		"status": map[string]any{
			"online": "В сети",
		},
	},
	"pages": []any{
		map[string]any{"title": "Главная"},
	},
	"items": map[string]any{
		"apple": map[string]any{
			"one":  "{{count}} яблоко",
			"few":  "{{count}} яблока",
			"many": "{{count}} яблок",
		},
	},
	"explicit_null_key": nil,
}

type recordingSink struct {
	mu    sync.Mutex
	items []i18n.Diagnostic
}

func (s *recordingSink) Report(d i18n.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, d)
}

func (s *recordingSink) all() []i18n.Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]i18n.Diagnostic(nil), s.items...)
}

func newStore(t *testing.T, opts ...i18n.Option) (*i18n.Store, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	base := []i18n.Option{
		i18n.WithDefaultLanguage("en"),
		i18n.WithTree("en", enTree),
		i18n.WithTree("ru", ruTree),
		i18n.WithSink(sink),
	}
	store, err := i18n.New(append(base, opts...)...)
	require.NoError(t, err)
	return store, sink
}

func lookup(t *testing.T, store *i18n.Store, locale, path string) any {
	t.Helper()
	v, err := store.Lookup(locale, path)
	require.NoError(t, err)
	return v
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires the default locale tree", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New()
		require.ErrorIs(t, err, i18n.ErrDefaultLocaleNotLoaded)

		_, err = i18n.New(
			i18n.WithDefaultLanguage("de"),
			i18n.WithTree("en", enTree),
		)
		require.ErrorIs(t, err, i18n.ErrDefaultLocaleNotLoaded)
	})

	t.Run("uses en as default", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.New(i18n.WithTree("en", enTree))
		require.NoError(t, err)
		require.Equal(t, "en", store.DefaultLanguage())
		require.False(t, store.Strict())
	})

	t.Run("returns error for empty default language", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(i18n.WithDefaultLanguage(""))
		require.ErrorIs(t, err, i18n.ErrEmptyLanguage)
	})

	t.Run("returns error for empty language or namespace in translations", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(i18n.WithTranslations("", "general", map[string]any{"hello": "Hello"}))
		require.ErrorIs(t, err, i18n.ErrEmptyLanguage)

		_, err = i18n.New(i18n.WithTranslations("en", "", map[string]any{"hello": "Hello"}))
		require.ErrorIs(t, err, i18n.ErrEmptyNamespace)
	})

	t.Run("rejects nil collaborators", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(i18n.WithTree("en", enTree), i18n.WithPluralProvider(nil))
		require.ErrorIs(t, err, i18n.ErrNilPluralProvider)

		_, err = i18n.New(i18n.WithTree("en", enTree), i18n.WithSink(nil))
		require.ErrorIs(t, err, i18n.ErrNilSink)

		_, err = i18n.New(i18n.WithTree("en", enTree), i18n.WithPluralRule("en", nil))
		require.ErrorIs(t, err, i18n.ErrNilPluralRule)
	})

	t.Run("merges namespaces and trees", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.New(
			i18n.WithTree("en", map[string]any{"app": map[string]any{"title": "App"}}),
			i18n.WithTranslations("en", "app", map[string]any{"subtitle": "Sub"}),
			i18n.WithTranslations("en", "errors", map[string]any{"not_found": "Not found"}),
		)
		require.NoError(t, err)
		require.Equal(t, "App", lookup(t, store, "en", "app.title"))
		require.Equal(t, "Sub", lookup(t, store, "en", "app.subtitle"))
		require.Equal(t, "Not found", lookup(t, store, "en", "errors.not_found"))
	})

	t.Run("rejects conflicting values", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(
			i18n.WithTree("en", map[string]any{"app": "App"}),
			i18n.WithTranslations("en", "app", map[string]any{"title": "App"}),
		)
		require.ErrorIs(t, err, i18n.ErrConflict)
	})

	t.Run("lists default locale first", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.New(
			i18n.WithDefaultLanguage("pl"),
			i18n.WithTree("pl", map[string]any{"a": "A"}),
			i18n.WithTree("en", map[string]any{"a": "A"}),
			i18n.WithTree("de", map[string]any{"a": "A"}),
		)
		require.NoError(t, err)
		require.Equal(t, []string{"pl", "de", "en"}, store.Languages())
		require.True(t, store.HasLanguage("de"))
		require.False(t, store.HasLanguage("fr"))
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)

	t.Run("own tree", func(t *testing.T) {
		t.Parallel()
		res := store.Resolve("ru", i18n.Path{i18n.Field("messages"), i18n.Field("status"), i18n.Field("online")})
		require.Equal(t, i18n.Found, res.Outcome)
		require.False(t, res.Fallback)
		require.Equal(t, "ru", res.Locale)
		require.Equal(t, "В сети", res.Node.Value())
	})

	t.Run("whole path falls back to default", func(t *testing.T) {
		t.Parallel()
		path := i18n.Path{i18n.Field("pages"), i18n.Index(0), i18n.Field("content")}
		res := store.Resolve("ru", path)
		require.Equal(t, i18n.Found, res.Outcome)
		require.True(t, res.Fallback)
		require.Equal(t, "en", res.Locale)

		direct := store.Resolve("en", path)
		require.Same(t, direct.Node, res.Node)
	})

	t.Run("empty path is the root", func(t *testing.T) {
		t.Parallel()
		res := store.Resolve("en", nil)
		require.Equal(t, i18n.Found, res.Outcome)
		require.Equal(t, i18n.KindMapping, res.Node.Kind())
	})

	t.Run("default locale never falls back", func(t *testing.T) {
		t.Parallel()
		res := store.Resolve("en", i18n.Path{i18n.Field("missing")})
		require.Equal(t, i18n.NotFound, res.Outcome)
		require.False(t, res.Fallback)
		require.Equal(t, 0, res.FailedAt)
	})

	t.Run("explicit null does not fall back", func(t *testing.T) {
		t.Parallel()
		res := store.Resolve("ru", i18n.Path{i18n.Field("explicit_null_key")})
		require.Equal(t, i18n.ExplicitNull, res.Outcome)
		require.False(t, res.Fallback)
	})

	t.Run("wrong access kind does not fall back", func(t *testing.T) {
		t.Parallel()
		res := store.Resolve("ru", i18n.Path{i18n.Field("pages"), i18n.Field("title")})
		require.Equal(t, i18n.WrongAccessKind, res.Outcome)
		require.Equal(t, "ru", res.Locale)
		require.Equal(t, i18n.KindSequence, res.FailedKind)
	})

	t.Run("traversing through null is a miss", func(t *testing.T) {
		t.Parallel()
		res := store.Resolve("ru", i18n.Path{i18n.Field("explicit_null_key"), i18n.Field("child")})
		require.Equal(t, i18n.NotFound, res.Outcome)
		require.True(t, res.Fallback)
	})
}

func TestLookupValues(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)

	t.Run("scalars pass through", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Привет", lookup(t, store, "ru", "greeting"))
		require.Equal(t, true, lookup(t, store, "en", "settings.enabled"))
		require.Equal(t, int64(3), lookup(t, store, "en", "settings.retries"))
		require.Equal(t, 0.5, lookup(t, store, "en", "settings.ratio"))
	})

	t.Run("own tree paths never use fallback values", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "В сети", lookup(t, store, "ru", "messages.status.online"))
		require.Equal(t, "Главная", lookup(t, store, "ru", "pages[0].title"))
	})

	t.Run("fallback equals direct default resolution", func(t *testing.T) {
		t.Parallel()
		for _, path := range []string{"messages.status.offline", "pages[0].content", "sections.intro", "pages[1].title"} {
			require.Equal(t, lookup(t, store, "en", path), lookup(t, store, "ru", path), path)
		}
	})

	t.Run("fallback replaces a whole missing subtree", func(t *testing.T) {
		t.Parallel()
		v := lookup(t, store, "ru", "sections")
		ns, ok := v.(*i18n.Namespace)
		require.True(t, ok)
		require.Equal(t, []string{"intro"}, ns.Keys())
		require.Equal(t, "ru", ns.Locale())
	})

	t.Run("views by node kind", func(t *testing.T) {
		t.Parallel()
		require.IsType(t, &i18n.Namespace{}, lookup(t, store, "en", "messages"))
		require.IsType(t, &i18n.List{}, lookup(t, store, "en", "pages"))
		require.IsType(t, &i18n.Plural{}, lookup(t, store, "en", "items.apple"))
		require.IsType(t, &i18n.Namespace{}, lookup(t, store, "en", "items"))
	})

	t.Run("invalid path", func(t *testing.T) {
		t.Parallel()
		_, err := store.Lookup("en", "pages[x]")
		require.ErrorIs(t, err, i18n.ErrInvalidPath)
	})
}

func TestViews(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	root, err := store.Get("en")
	require.NoError(t, err)

	t.Run("chained access", func(t *testing.T) {
		t.Parallel()
		messages, err := root.Get("messages")
		require.NoError(t, err)
		status, err := messages.(*i18n.Namespace).Get("status")
		require.NoError(t, err)
		online, err := status.(*i18n.Namespace).Get("online")
		require.NoError(t, err)
		require.Equal(t, "Online", online)
		require.Equal(t, "messages.status", status.(*i18n.Namespace).Path().String())
	})

	t.Run("list access", func(t *testing.T) {
		t.Parallel()
		v, err := root.Get("pages")
		require.NoError(t, err)
		pages := v.(*i18n.List)
		require.Equal(t, 2, pages.Len())

		page, err := pages.At(1)
		require.NoError(t, err)
		title, err := page.(*i18n.Namespace).Get("title")
		require.NoError(t, err)
		require.Equal(t, "About", title)
		require.Equal(t, "List(en: pages, len=2)", pages.String())
	})

	t.Run("list items fall back per path", func(t *testing.T) {
		t.Parallel()
		ru, err := store.Get("ru")
		require.NoError(t, err)
		v, err := ru.Get("pages")
		require.NoError(t, err)
		pages := v.(*i18n.List)
		require.Equal(t, 1, pages.Len())

		page, err := pages.At(0)
		require.NoError(t, err)
		content, err := page.(*i18n.Namespace).Get("content")
		require.NoError(t, err)
		require.Equal(t, "Welcome home", content)
	})

	t.Run("two wraps of the same mapping are equivalent but distinct", func(t *testing.T) {
		t.Parallel()
		a, err := root.Get("messages")
		require.NoError(t, err)
		b, err := root.Get("messages")
		require.NoError(t, err)
		require.NotSame(t, a, b)
		require.Equal(t, a, b)
	})

	t.Run("sibling paths do not share state", func(t *testing.T) {
		t.Parallel()
		v, err := root.Get("pages")
		require.NoError(t, err)
		pages := v.(*i18n.List)
		first, err := pages.At(0)
		require.NoError(t, err)
		second, err := pages.At(1)
		require.NoError(t, err)
		require.Equal(t, "pages[0]", first.(*i18n.Namespace).Path().String())
		require.Equal(t, "pages[1]", second.(*i18n.Namespace).Path().String())
	})

	t.Run("namespace lookup with relative path", func(t *testing.T) {
		t.Parallel()
		v, err := root.Lookup("pages[0].title")
		require.NoError(t, err)
		require.Equal(t, "Home", v)

		self, err := root.Lookup("")
		require.NoError(t, err)
		require.Same(t, root, self)
	})
}

func TestWrongAccess(t *testing.T) {
	t.Parallel()

	for _, strict := range []bool{false, true} {
		store, _ := newStore(t, i18n.WithStrict(strict))
		root, err := store.Get("en")
		require.NoError(t, err)

		pages, err := root.Get("pages")
		require.NoError(t, err)
		_, err = pages.(*i18n.List).Get("title")
		var wrong *i18n.WrongAccessKindError
		require.ErrorAs(t, err, &wrong)
		require.Equal(t, i18n.KindSequence, wrong.Kind)
		require.Equal(t, "pages.title", wrong.Path)

		_, err = root.At(0)
		require.ErrorIs(t, err, i18n.ErrWrongAccessKind)

		_, err = store.Lookup("en", "greeting.more")
		require.ErrorIs(t, err, i18n.ErrWrongAccessKind)

		_, err = store.Lookup("en", "messages[0]")
		require.ErrorIs(t, err, i18n.ErrWrongAccessKind)

		apple, err := store.Lookup("en", "items.apple")
		require.NoError(t, err)
		_, err = apple.(*i18n.Plural).Get("one")
		require.ErrorIs(t, err, i18n.ErrWrongAccessKind)
		_, err = apple.(*i18n.Plural).At(0)
		require.ErrorIs(t, err, i18n.ErrWrongAccessKind)

		_, err = root.Call(1)
		var notCallable *i18n.NotCallableError
		require.ErrorAs(t, err, &notCallable)
		require.Equal(t, i18n.KindMapping, notCallable.Kind)

		_, err = pages.(*i18n.List).Call(1)
		require.ErrorIs(t, err, i18n.ErrNotCallable)
	}
}

func TestNonStrictMissing(t *testing.T) {
	t.Parallel()

	t.Run("missing key returns null and reports", func(t *testing.T) {
		t.Parallel()
		store, sink := newStore(t)
		v := lookup(t, store, "ru", "messages.missing")
		require.True(t, i18n.IsNull(v))
		require.Equal(t, "Null(ru: messages.missing)", v.(i18n.Null).String())

		diags := sink.all()
		require.Len(t, diags, 1)
		require.Equal(t, i18n.ReasonNotFoundKey, diags[0].Reason)
		require.Equal(t, "ru", diags[0].Locale)
		require.Equal(t, "messages.missing", diags[0].Path)
		require.Contains(t, diags[0].Message, "not found")
		require.Contains(t, diags[0].Message, "null will be returned")
	})

	t.Run("out of range index returns null and reports", func(t *testing.T) {
		t.Parallel()
		store, sink := newStore(t)
		for _, path := range []string{"pages[5]", "pages[5].title"} {
			require.True(t, i18n.IsNull(lookup(t, store, "en", path)))
		}
		pages, err := store.Lookup("en", "pages")
		require.NoError(t, err)
		v, err := pages.(*i18n.List).At(-1)
		require.NoError(t, err)
		require.True(t, i18n.IsNull(v))

		diags := sink.all()
		require.Len(t, diags, 3)
		for _, d := range diags {
			require.Equal(t, i18n.ReasonNotFoundIndex, d.Reason)
		}
	})

	t.Run("explicit null never raises and reports explicit null", func(t *testing.T) {
		t.Parallel()
		for _, strict := range []bool{false, true} {
			store, sink := newStore(t, i18n.WithStrict(strict))
			v := lookup(t, store, "en", "explicit_null_key")
			require.True(t, i18n.IsNull(v))

			diags := sink.all()
			if strict {
				require.Empty(t, diags)
				continue
			}
			require.Len(t, diags, 1)
			require.Equal(t, i18n.ReasonExplicitNull, diags[0].Reason)
			require.Contains(t, diags[0].Message, "explicit null")
		}
	})

	t.Run("unloaded locale falls back to default", func(t *testing.T) {
		t.Parallel()
		store, sink := newStore(t)
		root, err := store.Get("de")
		require.NoError(t, err)
		require.Empty(t, root.Keys())

		v, err := root.Get("greeting")
		require.NoError(t, err)
		require.Equal(t, "Hello", v)

		diags := sink.all()
		require.NotEmpty(t, diags)
		require.Equal(t, i18n.ReasonLocaleNotLoaded, diags[0].Reason)
	})
}

func TestStrictMissing(t *testing.T) {
	t.Parallel()

	store, sink := newStore(t, i18n.WithStrict(true))
	require.True(t, store.Strict())

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		_, err := store.Lookup("ru", "messages.missing")
		var missing *i18n.MissingKeyError
		require.ErrorAs(t, err, &missing)
		require.ErrorIs(t, err, i18n.ErrMissingKey)
		require.Equal(t, "missing", missing.Key)
		require.Equal(t, "ru", missing.Locale)
		require.Equal(t, "messages.missing", missing.Path)
	})

	t.Run("index out of range", func(t *testing.T) {
		t.Parallel()
		_, err := store.Lookup("en", "pages[5]")
		var outOfRange *i18n.IndexOutOfRangeError
		require.ErrorAs(t, err, &outOfRange)
		require.Equal(t, 5, outOfRange.Index)
		require.Equal(t, "pages[5]", outOfRange.Path)
	})

	t.Run("unloaded locale", func(t *testing.T) {
		t.Parallel()
		_, err := store.Get("de")
		var notLoaded *i18n.LocaleNotLoadedError
		require.ErrorAs(t, err, &notLoaded)
		require.ErrorIs(t, err, i18n.ErrLocaleNotLoaded)
		require.Equal(t, "de", notLoaded.Locale)
	})

	t.Run("found values still resolve with fallback", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Offline", lookup(t, store, "ru", "messages.status.offline"))
	})

	t.Run("strict mode reports nothing", func(t *testing.T) {
		t.Parallel()
		_, _ = store.Lookup("en", "nope")
		for _, d := range sink.all() {
			require.NotEqual(t, i18n.ReasonNotFoundKey, d.Reason)
		}
	})
}

func TestPluralCall(t *testing.T) {
	t.Parallel()

	t.Run("english one and other", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t)
		apple := lookup(t, store, "en", "items.apple").(*i18n.Plural)

		for n, want := range map[int]string{0: "0 apples", 1: "1 apple", 2: "2 apples", 7: "7 apples"} {
			got, err := apple.Call(n)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
		got, err := apple.Call(1.5)
		require.NoError(t, err)
		require.Equal(t, "1.5 apples", got)
	})

	t.Run("russian categories", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t)
		apple := lookup(t, store, "ru", "items.apple").(*i18n.Plural)

		tests := []struct {
			n    int
			want string
		}{
			{1, "1 яблоко"},
			{3, "3 яблока"},
			{5, "5 яблок"},
			{21, "21 яблоко"},
			{100, "100 яблок"},
		}
		for _, tt := range tests {
			got, err := apple.Call(tt.n)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		}
		require.Equal(t, []plural.Category{plural.One, plural.Few, plural.Many}, apple.Forms())
	})

	t.Run("named arguments", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.New(i18n.WithTree("en", map[string]any{
			"cart": map[string]any{
				"one":   "{{name}} has {{count}} item",
				"other": "{{name}} has {{count}} items",
			},
		}))
		require.NoError(t, err)
		cart := lookup(t, store, "en", "cart").(*i18n.Plural)
		got, err := cart.Call(3, i18n.M{"name": "Ann"})
		require.NoError(t, err)
		require.Equal(t, "Ann has 3 items", got)
	})

	t.Run("missing form falls back to other then null", func(t *testing.T) {
		t.Parallel()
		store, sink := newStore(t)
		onlyOne := lookup(t, store, "en", "items.only_one").(*i18n.Plural)

		got, err := onlyOne.Call(1)
		require.NoError(t, err)
		require.Equal(t, "exactly one", got)

		got, err = onlyOne.Call(4)
		require.NoError(t, err)
		require.True(t, i18n.IsNull(got))

		diags := sink.all()
		require.Len(t, diags, 1)
		require.Equal(t, i18n.ReasonMissingPluralForm, diags[0].Reason)
	})

	t.Run("missing form in strict mode", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, i18n.WithStrict(true))
		onlyOne := lookup(t, store, "en", "items.only_one").(*i18n.Plural)
		_, err := onlyOne.Call(4)
		var missing *i18n.MissingPluralFormError
		require.ErrorAs(t, err, &missing)
		require.Equal(t, plural.Other, missing.Category)
	})

	t.Run("unsupported plural locale", func(t *testing.T) {
		t.Parallel()
		unsupported := plural.ProviderFunc(func(locale string, _ plural.Operands) (plural.Category, error) {
			return "", plural.ErrUnsupportedLocale
		})

		store, sink := newStore(t, i18n.WithPluralProvider(unsupported))
		apple := lookup(t, store, "en", "items.apple").(*i18n.Plural)
		got, err := apple.Call(1)
		require.NoError(t, err)
		require.Equal(t, "1 apples", got)
		require.Equal(t, i18n.ReasonUnsupportedPluralLocale, sink.all()[0].Reason)

		strictStore, _ := newStore(t, i18n.WithPluralProvider(unsupported), i18n.WithStrict(true))
		apple = lookup(t, strictStore, "en", "items.apple").(*i18n.Plural)
		_, err = apple.Call(1)
		require.ErrorIs(t, err, i18n.ErrUnsupportedPluralLocale)
		require.ErrorIs(t, err, plural.ErrUnsupportedLocale)
	})

	t.Run("locales without cldr rules", func(t *testing.T) {
		t.Parallel()
		apples := map[string]any{"items": map[string]any{
			"apple": map[string]any{"one": "{{count}} apple", "other": "{{count}} apples"},
		}}
		opts := []i18n.Option{
			i18n.WithTree("en", apples),
			i18n.WithTree("tlh", apples),
			i18n.WithTree("qaa", apples),
		}

		strict, err := i18n.New(append(opts, i18n.WithStrict(true))...)
		require.NoError(t, err)
		for _, locale := range []string{"tlh", "qaa"} {
			apple := lookup(t, strict, locale, "items.apple").(*i18n.Plural)
			_, err := apple.Call(1)
			var unsupported *i18n.UnsupportedPluralLocaleError
			require.ErrorAs(t, err, &unsupported, locale)
			require.ErrorIs(t, err, plural.ErrUnsupportedLocale, locale)
		}

		sink := &recordingSink{}
		lenient, err := i18n.New(append(opts, i18n.WithSink(sink))...)
		require.NoError(t, err)
		apple := lookup(t, lenient, "tlh", "items.apple").(*i18n.Plural)
		got, err := apple.Call(1)
		require.NoError(t, err)
		require.Equal(t, "1 apples", got)
		require.Equal(t, i18n.ReasonUnsupportedPluralLocale, sink.all()[0].Reason)
	})

	t.Run("custom plural rule", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, i18n.WithPluralRule("en", func(plural.Operands) plural.Category {
			return plural.Other
		}))
		apple := lookup(t, store, "en", "items.apple").(*i18n.Plural)
		got, err := apple.Call(1)
		require.NoError(t, err)
		require.Equal(t, "1 apples", got)
	})

	t.Run("dispatch uses the requested locale for fallback plurals", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.New(
			i18n.WithTree("en", map[string]any{
				"days": map[string]any{"one": "{{count}} day", "few": "{{count}} days (few)", "other": "{{count}} days"},
			}),
			i18n.WithTree("ru", map[string]any{"title": "Заголовок"}),
		)
		require.NoError(t, err)
		days := lookup(t, store, "ru", "days").(*i18n.Plural)
		got, err := days.Call(3)
		require.NoError(t, err)
		require.Equal(t, "3 days (few)", got)
	})

	t.Run("invalid quantity", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t)
		apple := lookup(t, store, "en", "items.apple").(*i18n.Plural)
		_, err := apple.Call("three")
		require.ErrorIs(t, err, i18n.ErrInvalidQuantity)
		require.ErrorIs(t, err, plural.ErrInvalidQuantity)
	})
}

func TestConcurrentReads(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				v, err := store.Lookup("ru", "pages[0].content")
				assert.NoError(t, err)
				assert.Equal(t, "Welcome home", v)
			}
		}()
	}
	wg.Wait()
}
