// Package api provides the REST interface for the star registry
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CryptoNari/BDND-01-PrivateBlockchain/config"
	"github.com/CryptoNari/BDND-01-PrivateBlockchain/registry"
	"github.com/CryptoNari/BDND-01-PrivateBlockchain/wallet"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/u-speak/logrusmiddleware"
)

// API is used as a container, allowing the REST handlers to access the
// registry service
type API struct {
	ListenInterface string
	service         *registry.Service
	certfile        string
	keyfile         string
}

// Error is returned when something has gone wrong
type Error struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type challengeRequest struct {
	Address string `json:"address"`
}

type challengeResponse struct {
	Address string `json:"address"`
	Message string `json:"message"`
}

type starSubmission struct {
	Address   string        `json:"address"`
	Message   string        `json:"message"`
	Signature string        `json:"signature"`
	Star      registry.Star `json:"star"`
}

type auditResponse struct {
	Valid  bool  `json:"valid"`
	Errors []int `json:"errors"`
	Count  int   `json:"count"`
}

// logger bridges logrusmiddleware to the echo Logger interface, which gained
// a SetHeader method after the middleware's last release
type logger struct {
	logrusmiddleware.Logger
}

// SetHeader is a no-op, the output format is owned by logrus
func (l logger) SetHeader(string) {}

// New returns a configured instance of the API server
func New(c config.Configuration, s *registry.Service) *API {
	return &API{
		service:         s,
		keyfile:         c.Global.SSLKey,
		certfile:        c.Global.SSLCert,
		ListenInterface: c.Web.API.Interface + ":" + strconv.Itoa(c.Web.API.Port),
	}
}

// Run starts the API server as specified in the configuration
func (a *API) Run() error {
	e := a.router()
	log.Infof("Starting API Server on interface %s", a.ListenInterface)
	if a.certfile != "" && a.keyfile != "" {
		return e.StartTLS(a.ListenInterface, a.certfile, a.keyfile)
	}
	log.Warn("Serving without TLS")
	return e.Start(a.ListenInterface)
}

func (a *API) router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger = logger{logrusmiddleware.Logger{Logger: log.StandardLogger()}}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper:      middleware.DefaultSkipper,
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	e.POST("/requestValidation", a.requestValidation)
	e.POST("/submitstar", a.submitStar)
	e.GET("/block/height/:height", a.blockByHeight)
	e.GET("/block/hash/:hash", a.blockByHash)
	e.GET("/blocks/:address", a.starsByOwner)
	e.GET("/validatechain", a.validateChain)
	e.GET("/status", a.status)
	return e
}

func (a *API) requestValidation(c echo.Context) error {
	req := new(challengeRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if req.Address == "" {
		return c.JSON(http.StatusBadRequest, Error{Message: "Missing wallet address", Code: http.StatusBadRequest})
	}
	return c.JSON(http.StatusOK, challengeResponse{
		Address: req.Address,
		Message: a.service.RequestChallenge(req.Address),
	})
}

func (a *API) submitStar(c echo.Context) error {
	sub := new(starSubmission)
	if err := c.Bind(sub); err != nil {
		return err
	}
	if sub.Address == "" || sub.Message == "" || sub.Signature == "" || len(sub.Star) == 0 {
		return c.JSON(http.StatusBadRequest, Error{Message: "Address, message, signature and star are all required", Code: http.StatusBadRequest})
	}
	b, err := a.service.SubmitStar(sub.Address, sub.Message, sub.Signature, sub.Star)
	if err != nil {
		code := http.StatusInternalServerError
		if rejected(err) {
			code = http.StatusBadRequest
		}
		return c.JSON(code, Error{Message: err.Error(), Code: code})
	}
	return c.JSON(http.StatusCreated, jsonize(b))
}

func (a *API) blockByHeight(c echo.Context) error {
	height, err := strconv.Atoi(c.Param("height"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Error{Message: "Height must be numeric", Code: http.StatusBadRequest})
	}
	b := a.service.BlockByHeight(height)
	if b == nil {
		return c.JSON(http.StatusNotFound, Error{Message: "No block at this height", Code: http.StatusNotFound})
	}
	return c.JSON(http.StatusOK, jsonize(b))
}

func (a *API) blockByHash(c echo.Context) error {
	h, err := decodeHash(c.Param("hash"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Error{Message: "Could not decode provided hash", Code: http.StatusBadRequest})
	}
	b := a.service.BlockByHash(h)
	if b == nil {
		return c.JSON(http.StatusNotFound, Error{Message: "No block with this hash", Code: http.StatusNotFound})
	}
	return c.JSON(http.StatusOK, jsonize(b))
}

func (a *API) starsByOwner(c echo.Context) error {
	records, err := a.service.StarsByWallet(c.Param("address"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, Error{Message: err.Error(), Code: http.StatusInternalServerError})
	}
	return c.JSON(http.StatusOK, records)
}

func (a *API) validateChain(c echo.Context) error {
	rep := a.service.Audit()
	return c.JSON(http.StatusOK, auditResponse{
		Valid:  rep.OK(),
		Errors: rep.Errors,
		Count:  rep.Count(),
	})
}

func (a *API) status(c echo.Context) error {
	return c.JSON(http.StatusOK, a.service.Status())
}

// rejected separates client mistakes from registry faults
func rejected(err error) bool {
	for _, sentinel := range []error{
		wallet.ErrChallengeExpired,
		wallet.ErrChallengeMalformed,
		wallet.ErrSignatureInvalid,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
