// Package router registra as rotas da API sobre o httprouter e mantém a lista do que foi montado
package router

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

type Middleware func(http.Handler) http.Handler

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []Middleware // aplicados só nesta rota, o primeiro é o mais externo
}

func (r Route) String() string {
	return fmt.Sprintf("%s %s", r.Method, r.Path)
}

type Option func(*Router)

// WithRoutes agrupa as rotas de um recurso (painel, lançamentos, cron...)
func WithRoutes(routes ...Route) Option {
	return func(rt *Router) {
		for _, route := range routes {
			rt.Handle(route)
		}
	}
}

type Router struct {
	mux        *httprouter.Router
	registered map[string]struct{}
}

// New cria o roteador; rotas e métodos desconhecidos respondem com o envelope de erro da API
func New(options ...Option) *Router {
	mux := httprouter.New()
	mux.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
	mux.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", map[string]string{"method": r.Method})
	})

	rt := &Router{
		mux:        mux,
		registered: make(map[string]struct{}),
	}
	for _, option := range options {
		option(rt)
	}

	return rt
}

// Handle monta a rota com seus middlewares. Rotas sem handler ou repetidas são ignoradas
// com log de erro, em vez do panic do httprouter no registro duplicado.
func (rt *Router) Handle(route Route) {
	key := route.String()

	if route.Handler == nil {
		logrus.WithField("route", key).Error("router: rota sem handler ignorada")
		return
	}
	if _, exists := rt.registered[key]; exists {
		logrus.WithField("route", key).Error("router: rota duplicada ignorada")
		return
	}

	handler := route.Handler
	for i := len(route.Middlewares) - 1; i >= 0; i-- {
		handler = route.Middlewares[i](handler)
	}

	rt.mux.Handler(route.Method, route.Path, handler)
	rt.registered[key] = struct{}{}
}

// Routes lista as rotas montadas ("GET /v1/dashboard"), em ordem alfabética
func (rt *Router) Routes() []string {
	routes := make([]string, 0, len(rt.registered))
	for key := range rt.registered {
		routes = append(routes, key)
	}
	sort.Strings(routes)
	return routes
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}
