package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/shopspring/decimal"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/consts"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/session"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

const layoutFile = "templates/layout.html"

// pages holds one parsed template set per page, each joined with the layout.
type pages struct {
	sets map[string]*template.Template
}

func mustLoadPages() *pages {
	p, err := loadPages(templateFiles)
	if err != nil {
		panic(err)
	}
	return p
}

func loadPages(fsys fs.FS) (*pages, error) {
	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}
	p := &pages{sets: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(fsys, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		p.sets[name] = tmpl
	}
	return p, nil
}

func staticFS() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

var templateFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return "₹" + d.StringFixed(2)
	},
	"mul": func(d decimal.Decimal, n int) decimal.Decimal {
		return d.Mul(decimal.NewFromInt(int64(n)))
	},
	"positive": func(d decimal.Decimal) bool {
		return d.IsPositive()
	},
	"stockLabel": func(stock int) string {
		if stock > 0 {
			return fmt.Sprintf("%d Available", stock)
		}
		return "Out of Stock"
	},
	"rating": func(r float64) string {
		return fmt.Sprintf("%.1f", r)
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

// page is what a handler hands to render. The layout fields are filled in
// by render.
type page struct {
	Title   string
	Content any
	// Refresh, when set, moves the browser on to RefreshURL.
	Refresh    time.Duration
	RefreshURL string

	Caller    session.Caller
	CartCount int
	Flashes   []Flash
	CSRF      template.HTML
	NoticeTTL int
}

func (p page) RefreshSeconds() int {
	return int(p.Refresh / time.Second)
}

func (s *Server) render(ctx *gin.Context, status int, name string, p page) {
	log := logger.Get()
	tmpl, ok := s.pages.sets[name]
	if !ok {
		log.Error().Str("page", name).Msg("unknown page")
		ctx.String(http.StatusInternalServerError, "internal error")
		return
	}
	// Nothing is rendered for a request nobody waits for.
	if ctx.Request.Context().Err() != nil {
		ctx.Abort()
		return
	}
	p.Caller = callerOf(ctx)
	if n, ok := s.bus.CartCount(p.Caller.SessionID); ok {
		p.CartCount = n
	}
	p.Flashes = s.takeFlashes(ctx)
	p.CSRF = csrf.TemplateField(ctx.Request)
	p.NoticeTTL = int(consts.NoticeTTL / time.Millisecond)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		log.Error().Err(err).Str("page", name).Msg("failed to render page")
		ctx.String(http.StatusInternalServerError, "internal error")
		return
	}
	ctx.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

type errorView struct {
	Message string
	Retry   string
}

func (s *Server) renderError(ctx *gin.Context, status int, msg string) {
	retry := ""
	if ctx.Request.Method == http.MethodGet && status != http.StatusNotFound {
		retry = ctx.Request.URL.RequestURI()
	}
	s.render(ctx, status, "error", page{Title: "Error", Content: errorView{Message: msg, Retry: retry}})
}
