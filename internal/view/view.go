// File: internal/view/view.go
package view

import (
	"crypto/md5"
	"embed"
	"encoding/hex"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"personal-blog/internal/model"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutFile = "templates/layout.html"

	gravatarBase = "https://www.gravatar.com/avatar/"
	avatarSize   = 40
)

// Viewer 目前瀏覽頁面的使用者，未登入時為零值
type Viewer struct {
	UserID   int
	Name     string
	IsAdmin  bool
	LoggedIn bool
}

// Page 所有頁面共用的資料
type Page struct {
	Title    string
	Viewer   Viewer
	Flash    string
	Posts    []model.Post
	Post     *model.Post
	Comments []model.Comment
	Users    []model.User
	Form     map[string]string
	Status   int
	Message  string
}

var funcs = template.FuncMap{
	// 文章內容已於寫入時經 bluemonday 過濾
	"safe":   func(s string) template.HTML { return template.HTML(s) },
	"avatar": AvatarURL,
}

// AvatarURL 依 email 產生 Gravatar 頭像網址，沒有頭像時以 identicon 代替
func AvatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("%s%s?s=%d&d=identicon&r=g", gravatarBase, hex.EncodeToString(sum[:]), avatarSize)
}

// Renderer 實作 echo.Renderer，每個頁面各自與 layout 組合
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	return parse(templateFS)
}

func parse(fsys fs.FS) (*Renderer, error) {
	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(fsys, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		t, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(fsys, f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		r.pages[strings.TrimSuffix(path.Base(f), ".html")] = t
	}
	return r, nil
}

// Render 以 "base" 為入口輸出指定頁面
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "base", data)
}

// Has 回傳是否存在該頁面
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}
