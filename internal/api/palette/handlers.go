// internal/api/palette/handlers.go
package palette

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/hueforge/hueforge/internal/api/apiutil"
	"github.com/hueforge/hueforge/internal/materialcolor"
)

// ThemeType selects which of the two generated schemes is serialized.
// The query tokens are case-sensitive.
type ThemeType string

const (
	ThemeTypeDark  ThemeType = "Dark"
	ThemeTypeLight ThemeType = "Light"
)

const (
	baseColorParam = "base_color"
	themeTypeParam = "theme_type"
)

var (
	customColors []materialcolor.CustomColor
	validate     *validator.Validate
	initOnce     sync.Once
)

// InitHandlers must be called during server startup before handling
// requests. The accent list is shared by every request and never written
// after this point.
func InitHandlers(customs []materialcolor.CustomColor) {
	initOnce.Do(func() {
		customColors = customs
		validate = validator.New()
	})
}

type paletteParams struct {
	BaseColor string `validate:"required"`
	ThemeType string `validate:"omitempty,oneof=Dark Light"`
}

// HandleGetPalette serves GET /getPalette. The response body is the hex
// concatenation of every scheme role color followed by the four variants
// of each accent color, for the requested mode. Generation is
// all-or-nothing; any failure propagates to the error adapter.
func HandleGetPalette(w http.ResponseWriter, r *http.Request) error {
	logger := log.Ctx(r.Context())

	query := r.URL.Query()
	params := paletteParams{
		BaseColor: query.Get(baseColorParam),
		ThemeType: query.Get(themeTypeParam),
	}
	if params.ThemeType == "" {
		params.ThemeType = string(ThemeTypeLight)
	}
	if err := validate.Struct(&params); err != nil {
		return fmt.Errorf("invalid palette request: %w", err)
	}

	logger.Info().
		Str("theme_type", params.ThemeType).
		Str("base_color", params.BaseColor).
		Msg("Generating theme")

	source, err := materialcolor.ParseARGB(params.BaseColor)
	if err != nil {
		return err
	}

	theme := materialcolor.NewThemeBuilder(source).
		WithCustomColors(customColors).
		Build()

	body, err := renderPalette(theme, ThemeType(params.ThemeType))
	if err != nil {
		return err
	}

	logger.Info().Str("palette", body).Msg("Generated theme")

	return apiutil.WriteText(w, http.StatusOK, body)
}

// renderPalette flattens one mode of the theme into the positional hex
// string: scheme roles first, then per accent color its color,
// color-container, on-color and on-color-container variants, with no
// separators.
func renderPalette(theme materialcolor.Theme, themeType ThemeType) (string, error) {
	var scheme materialcolor.Scheme
	switch themeType {
	case ThemeTypeDark:
		scheme = theme.Schemes.Dark
	case ThemeTypeLight:
		scheme = theme.Schemes.Light
	default:
		return "", fmt.Errorf("unknown theme type %q", themeType)
	}

	var b strings.Builder
	b.Grow(6 * (materialcolor.NumRoles + 4*len(theme.CustomColors)))

	for _, c := range scheme.Ordered() {
		b.WriteString(c.Hex())
	}
	for _, group := range theme.CustomColors {
		variants := group.Light
		if themeType == ThemeTypeDark {
			variants = group.Dark
		}
		for _, c := range variants.Ordered() {
			b.WriteString(c.Hex())
		}
	}

	return b.String(), nil
}
