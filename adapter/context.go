package adapter

import (
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/valyala/fasthttp"
	"gopkg.in/yaml.v3"

	patricia "github.com/tobyapi/patricia-router"
)

// Context wraps a single fasthttp request/response exchange, the
// matched handler chain, and the lookup result that produced it. One
// Context is pooled and reused per request; init resets it.
type Context struct {
	RequestCtx *fasthttp.RequestCtx

	zeno     *Zeno
	result   *patricia.LookupResult[[]Handler]
	index    int
	handlers []Handler
}

func (c *Context) init(ctx *fasthttp.RequestCtx) {
	c.RequestCtx = ctx
	c.result = nil
	c.index = -1
	c.handlers = nil
}

// Zeno returns the application the context belongs to.
func (c *Context) Zeno() *Zeno {
	return c.zeno
}

// Next invokes the remaining handlers in the chain in order, stopping
// at (and returning) the first error.
func (c *Context) Next() error {
	c.index++
	for n := len(c.handlers); c.index < n; c.index++ {
		if err := c.handlers[c.index](c); err != nil {
			return err
		}
	}
	return nil
}

// Abort short-circuits the handler chain: no further handler runs.
func (c *Context) Abort() {
	c.index = len(c.handlers)
}

// Param returns the bound value of a named or catch-all path parameter,
// or def[0] (or "" if def is empty) when it was never bound or is bound
// to the empty string.
func (c *Context) Param(name string, def ...string) string {
	if c.result != nil {
		if v := c.result.Params(name); v != "" {
			return v
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return ""
}

// ParamAs converts a path parameter to T via toType, returning the zero
// value of T if the parameter was never bound or does not parse as T.
// Go methods cannot carry their own type parameters, so this is a
// package-level function rather than a method on Context.
func ParamAs[T any](c *Context, name string) T {
	return toType[T](c.Param(name))
}

// ParamInt returns a path parameter parsed as int, or 0 if unbound or
// not a valid integer.
func (c *Context) ParamInt(name string) int {
	return toType[int](c.Param(name))
}

// ParamInt64 returns a path parameter parsed as int64, or 0 if unbound
// or not a valid integer.
func (c *Context) ParamInt64(name string) int64 {
	return toType[int64](c.Param(name))
}

// ParamFloat64 returns a path parameter parsed as float64, or 0 if
// unbound or not a valid float.
func (c *Context) ParamFloat64(name string) float64 {
	return toType[float64](c.Param(name))
}

// ParamBool returns a path parameter parsed as bool by strconv.ParseBool
// (after lowercasing), or false if unbound or not accepted by it.
func (c *Context) ParamBool(name string) bool {
	return toType[bool](c.Param(name))
}

// URL resolves a named route's pattern into a concrete path.
func (c *Context) URL(route string, pairs ...any) string {
	if r := c.zeno.routes[route]; r != nil {
		return r.URL(pairs...)
	}
	return ""
}

// Query returns the first value of a URL query parameter, or def[0]
// (or "" if def is empty) when absent or empty.
func (c *Context) Query(name string, def ...string) string {
	if v := c.RequestCtx.QueryArgs().Peek(name); len(v) > 0 {
		return string(v)
	}
	if len(def) > 0 {
		return def[0]
	}
	return ""
}

// QueryArray returns every value bound to a repeated query parameter.
func (c *Context) QueryArray(name string) []string {
	var values []string
	c.RequestCtx.QueryArgs().VisitAll(func(k, v []byte) {
		if string(k) == name {
			values = append(values, string(v))
		}
	})
	return values
}

// Accepts walks the client's Accept header entries in the order given
// (q-values are not weighed) and returns the offer named by the first
// entry that matches one; a "*/*" entry admits the first offer. With no
// Accept header the first offer is returned; "" if nothing matches.
func (c *Context) Accepts(offers ...string) string {
	accept := string(c.RequestCtx.Request.Header.Peek(HeaderAccept))
	if accept == "" {
		if len(offers) > 0 {
			return offers[0]
		}
		return ""
	}
	for spec := range strings.SplitSeq(accept, ",") {
		spec = strings.TrimSpace(strings.SplitN(spec, ";", 2)[0])
		if spec == "*/*" && len(offers) > 0 {
			return offers[0]
		}
		for _, offer := range offers {
			if spec == offer {
				return offer
			}
		}
	}
	return ""
}

// RealIP returns the left-most address in X-Forwarded-For, falling
// back to the TCP peer address.
func (c *Context) RealIP() string {
	if xff := string(c.RequestCtx.Request.Header.Peek(HeaderForwardedFor)); xff != "" {
		return strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
	}
	return c.RequestCtx.RemoteIP().String()
}

// byteRange is one byte range parsed from a Range header; both Start and
// End are inclusive offsets.
type byteRange struct {
	Start, End int
}

// rangeResult holds every range parsed from a Range header.
type rangeResult struct {
	Type   string
	Ranges []byteRange
}

// Ranges parses the request's Range header against a resource of the
// given total size.
func (c *Context) Ranges(size int) (*rangeResult, error) {
	header := string(c.RequestCtx.Request.Header.Peek(HeaderRange))
	if header == "" {
		return nil, nil
	}
	kind, spec, ok := strings.Cut(header, "=")
	if !ok {
		return nil, ErrRequestedRangeNotSatisfiable()
	}
	result := &rangeResult{Type: kind}
	for part := range strings.SplitSeq(spec, ",") {
		start, end, ok := strings.Cut(strings.TrimSpace(part), "-")
		if !ok {
			return nil, ErrRequestedRangeNotSatisfiable()
		}
		s, err := strconv.Atoi(start)
		if err != nil {
			return nil, ErrRequestedRangeNotSatisfiable()
		}
		e := size - 1
		if end != "" {
			e, err = strconv.Atoi(end)
			if err != nil {
				return nil, ErrRequestedRangeNotSatisfiable()
			}
		}
		result.Ranges = append(result.Ranges, byteRange{Start: s, End: e})
	}
	return result, nil
}

// ErrRequestedRangeNotSatisfiable is returned by Ranges on a malformed
// Range header.
func ErrRequestedRangeNotSatisfiable(msg ...string) HTTPError {
	return choose(DefaultRangeNotSatisfiable, StatusRequestedRangeNotSatisfiable, msg...)
}

// Status sets the response status code and returns the context for chaining.
func (c *Context) Status(code int) *Context {
	c.RequestCtx.Response.SetStatusCode(code)
	return c
}

// SendStatusCode sets the response status code with no body.
func (c *Context) SendStatusCode(code int) error {
	c.RequestCtx.Response.SetStatusCode(code)
	return nil
}

// SendString writes s as the response body.
func (c *Context) SendString(s string) error {
	c.RequestCtx.SetBodyString(s)
	return nil
}

// BindJSON decodes the request body as JSON into v using zeno.JsonDecoder.
func (c *Context) BindJSON(v any) error {
	return c.zeno.JsonDecoder(c.RequestCtx.PostBody(), v)
}

// SendJSON encodes v as JSON using zeno.JsonEncoder and writes it with
// the appropriate content type.
func (c *Context) SendJSON(v any) error {
	body, err := c.zeno.JsonEncoder(v)
	if err != nil {
		return err
	}
	c.RequestCtx.SetContentType("application/json")
	c.RequestCtx.SetBody(body)
	return nil
}

// BindXML decodes the request body as XML into v using zeno.XmlDecoder.
func (c *Context) BindXML(v any) error {
	return c.zeno.XmlDecoder(c.RequestCtx.PostBody(), v)
}

// SendXML encodes v as XML using zeno.XmlEncoder and writes it with
// the appropriate content type.
func (c *Context) SendXML(v any) error {
	body, err := c.zeno.XmlEncoder(v)
	if err != nil {
		return err
	}
	c.RequestCtx.SetContentType("application/xml")
	c.RequestCtx.SetBody(body)
	return nil
}

// BindYAML decodes the request body as YAML into v.
func (c *Context) BindYAML(v any) error {
	return yaml.Unmarshal(c.RequestCtx.PostBody(), v)
}

// SendYAML encodes v as YAML and writes it with the appropriate content type.
func (c *Context) SendYAML(v any) error {
	body, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	c.RequestCtx.SetContentType("application/x-yaml")
	c.RequestCtx.SetBody(body)
	return nil
}

// BindTOML decodes the request body as TOML into v.
func (c *Context) BindTOML(v any) error {
	return toml.Unmarshal(c.RequestCtx.PostBody(), v)
}

// SendTOML encodes v as TOML and writes it with the appropriate content type.
func (c *Context) SendTOML(v any) error {
	body, err := toml.Marshal(v)
	if err != nil {
		return err
	}
	c.RequestCtx.SetContentType("application/toml")
	c.RequestCtx.SetBody(body)
	return nil
}

// BindCBOR decodes the request body as CBOR into v.
func (c *Context) BindCBOR(v any) error {
	return cbor.Unmarshal(c.RequestCtx.PostBody(), v)
}

// SendCBOR encodes v as CBOR and writes it with the appropriate content type.
func (c *Context) SendCBOR(v any) error {
	body, err := cbor.Marshal(v)
	if err != nil {
		return err
	}
	c.RequestCtx.SetContentType("application/cbor")
	c.RequestCtx.SetBody(body)
	return nil
}
