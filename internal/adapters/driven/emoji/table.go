// Package emoji provides the alias table consulted by the :name: rule.
package emoji

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/marktext/internal/core/domain"
	"github.com/custodia-labs/marktext/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.EmojiTable = (*Table)(nil)

// aliasPattern matches the names the :name: rule can produce.
var aliasPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

var builtin = map[string]string{
	"thumbsup":         "👍",
	"thumbsdown":       "👎",
	"smile":            "😄",
	"smiley":           "😃",
	"grin":             "😁",
	"laughing":         "😆",
	"joy":              "😂",
	"wink":             "😉",
	"blush":            "😊",
	"heart_eyes":       "😍",
	"thinking":         "🤔",
	"neutral_face":     "😐",
	"confused":         "😕",
	"cry":              "😢",
	"sob":              "😭",
	"angry":            "😠",
	"scream":           "😱",
	"sunglasses":       "😎",
	"sweat_smile":      "😅",
	"upside_down_face": "🙃",
	"heart":            "❤️",
	"broken_heart":     "💔",
	"star":             "⭐",
	"sparkles":         "✨",
	"fire":             "🔥",
	"rocket":           "🚀",
	"tada":             "🎉",
	"clap":             "👏",
	"wave":             "👋",
	"pray":             "🙏",
	"muscle":           "💪",
	"eyes":             "👀",
	"ok_hand":          "👌",
	"raised_hands":     "🙌",
	"point_right":      "👉",
	"white_check_mark": "✅",
	"heavy_check_mark": "✔️",
	"x":                "❌",
	"warning":          "⚠️",
	"bulb":             "💡",
	"memo":             "📝",
	"book":             "📖",
	"bug":              "🐛",
	"wrench":           "🔧",
	"hammer":           "🔨",
	"lock":             "🔒",
	"key":              "🔑",
	"link":             "🔗",
	"calendar":         "📅",
	"hourglass":        "⌛",
	"coffee":           "☕",
	"pizza":            "🍕",
	"beer":             "🍺",
	"sun":              "☀️",
	"cloud":            "☁️",
	"zap":              "⚡",
	"snowflake":        "❄️",
	"100":              "💯",
	"question":         "❓",
	"exclamation":      "❗",
	"arrow_right":      "➡️",
	"arrow_left":       "⬅️",
	"checkered_flag":   "🏁",
	"construction":     "🚧",
	"package":          "📦",

	"chart_with_upwards_trend": "📈",
}

// Table maps alias names to glyphs. It is safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	aliases map[string]string
}

// Default returns a table holding the built-in aliases.
func Default() *Table {
	t := &Table{aliases: make(map[string]string, len(builtin))}
	for k, v := range builtin {
		t.aliases[k] = v
	}
	return t
}

// New returns a table holding only aliases.
func New(aliases map[string]string) *Table {
	t := &Table{aliases: make(map[string]string, len(aliases))}
	for k, v := range aliases {
		t.aliases[k] = v
	}
	return t
}

// Lookup returns the glyph for alias.
func (t *Table) Lookup(alias string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	glyph, ok := t.aliases[alias]
	return glyph, ok
}

// Aliases returns the known alias names, sorted.
func (t *Table) Aliases() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.aliases))
	for k := range t.aliases {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// aliasFile is the layout of an alias override file:
//
//	[aliases]
//	shipit = "🐿️"
type aliasFile struct {
	Aliases map[string]string `toml:"aliases"`
}

// LoadFile merges the aliases of a TOML file into the table, overriding
// built-in names. Names the :name: rule could never produce are rejected.
func (t *Table) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading alias file: %w", err)
	}
	var f aliasFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing alias file %s: %w", path, err)
	}
	for name, glyph := range f.Aliases {
		if !aliasPattern.MatchString(name) || glyph == "" {
			return fmt.Errorf("alias %q: %w", name, domain.ErrInvalidInput)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for name, glyph := range f.Aliases {
		t.aliases[name] = glyph
	}
	return nil
}
