package manifest

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/dop251/goja"

	"mediafetcher/internal/derrors"
)

// ResolveManifestURL digs a DASH manifest url out of a watch page. Plain
// markup is checked first, then inline player-config scripts.
func ResolveManifestURL(body string) (u string, err error) {
	doc, err := htmlquery.Parse(strings.NewReader(body))
	if err != nil {
		return
	}

	for _, xp := range []string{`//source`, `//video`, `//link`} {
		for _, n := range htmlquery.Find(doc, xp) {
			for _, attr := range []string{"src", "href"} {
				if v := htmlquery.SelectAttr(n, attr); isManifestURL(v) {
					return v, nil
				}
			}
		}
	}

	for _, n := range htmlquery.Find(doc, `//script`) {
		if u = evalPlayerConfig(htmlquery.InnerText(n)); u != "" {
			return u, nil
		}
	}

	err = derrors.ErrNotFound
	return
}

func isManifestURL(v string) bool {
	if v == "" {
		return false
	}
	v = strings.ToLower(v)
	if i := strings.IndexAny(v, "?#"); i >= 0 {
		v = v[:i]
	}
	return strings.HasSuffix(v, ".mpd")
}

// evalPlayerConfig runs an inline script in a throwaway vm and pulls the
// manifest url out of the player config it leaves behind. Scripts that
// fail to run are skipped, real pages mix config blobs with analytics
// garbage.
func evalPlayerConfig(js string) string {
	if !strings.Contains(js, "playerConfig") {
		return ""
	}

	vm := goja.New()
	vm.Set("window", map[string]any{})
	if _, err := vm.RunString(js); err != nil {
		return ""
	}

	v, err := vm.RunString(`(function () {
		var cfg = (typeof playerConfig !== "undefined" && playerConfig) || window.playerConfig;
		if (!cfg) return "";
		return cfg.manifestUrl || cfg.manifest_url || (cfg.dash && cfg.dash.url) || "";
	})()`)
	if err != nil {
		return ""
	}
	return v.String()
}
