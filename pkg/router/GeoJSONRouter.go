// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package router

import (
	"net/http"
)

import (
	gocache "github.com/patrickmn/go-cache"
	"github.com/spf13/viper"
)

import (
	"github.com/spatialcurrent/go-sync-logger/pkg/gsl"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/handlers"
	"github.com/spatialcurrent/go-geojson/pkg/middleware"
	"github.com/spatialcurrent/go-geojson/pkg/request"
)

type GeoJSONRouter struct {
	*Router
	Viper     *viper.Viper
	Debug     bool
	GitBranch string
	GitCommit string
}

type NewGeoJSONRouterInput struct {
	Viper         *viper.Viper
	Requests      chan request.Request
	Messages      chan interface{}
	ErrorsChannel chan interface{}
	DocumentCache *gocache.Cache
	Logger        *gsl.Logger
	GitBranch     string
	GitCommit     string
	Verbose       bool
}

func NewGeoJSONRouter(input *NewGeoJSONRouterInput) *GeoJSONRouter {

	v := input.Viper
	messages := input.Messages

	r := &GeoJSONRouter{
		Router:    NewRouter(input.Requests, input.Messages, input.ErrorsChannel, input.DocumentCache),
		Viper:     input.Viper,
		Debug:     v.GetBool("verbose"),
		GitBranch: input.GitBranch,
		GitCommit: input.GitCommit,
	}

	if v.GetBool("http-middleware-recover") {
		messages <- map[string]interface{}{"middleware": "recover", "loaded": true}
		r.Use(middleware.RecoverMiddleware(input.Logger))
	}

	r.Use(middleware.LogMiddleware(input.Logger))

	if v.GetBool("http-middleware-cors") {
		messages <- map[string]interface{}{"middleware": "cors", "loaded": true}
		r.Use(middleware.CorsMiddleware(v.GetString("cors-origin"), v.GetString("cors-credentials"), []string{"GET", "POST", "OPTIONS"}))
	}

	r.AddHandler("health", []string{"GET"}, []string{"/health"}, &handlers.HealthHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("validate", []string{"POST", "OPTIONS"}, []string{"/geojson/validate"}, &handlers.ValidateHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("convert", []string{"POST", "OPTIONS"}, []string{"/geojson/convert"}, &handlers.ConvertHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	return r
}

func (r *GeoJSONRouter) NewBaseHandler() *handlers.BaseHandler {
	return &handlers.BaseHandler{
		Viper:         r.Viper,
		Requests:      r.Requests,
		Messages:      r.Messages,
		Errors:        r.Errors,
		DocumentCache: r.DocumentCache,
		Debug:         r.Debug,
		GitBranch:     r.GitBranch,
		GitCommit:     r.GitCommit,
	}
}

func (r *GeoJSONRouter) AddHandler(name string, methods []string, paths []string, handler http.Handler) {
	for _, path := range paths {
		r.Methods(methods...).Name(name).Path(path).Handler(handler)
	}
}

func (r *GeoJSONRouter) AddHandlerFunc(name string, methods []string, paths []string, handlerFunc func(http.ResponseWriter, *http.Request)) {
	for _, path := range paths {
		r.Methods(methods...).Name(name).Path(path).HandlerFunc(handlerFunc)
	}
}
