package adapter

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unsafe"

	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/reuseport"

	patricia "github.com/tobyapi/patricia-router"
)

type Handler func(*Context) error

// RouteGroup is the name under which Zeno embeds its root Group, so that
// Group's own methods (including Group, for nested groups) are promoted
// onto Zeno.
type RouteGroup = Group

// Zeno is the main application struct for the framework.
// It stores one patricia tree per HTTP method, middleware, error
// handling logic, and manages request context pooling and execution.
type Zeno struct {
	RouteGroup // Root group for registering routes directly

	trees map[string]*patricia.Tree[[]Handler]

	// Request context pooling for performance
	pool sync.Pool

	// Handlers executed when no route matches
	notFound         []Handler
	notFoundHandlers []Handler

	// Named route registry
	routes map[string]*Route

	// Unsafe byte slice to string conversion
	toString func(v []byte) string

	// Custom error handler
	ErrorHandler func(*Context, error) error

	// UseReusePort enables SO_REUSEPORT for multiple listeners on the
	// same port; set before calling Run.
	UseReusePort bool

	// JsonDecoder is the default function used to decode a JSON payload
	// from the request body. It should unmarshal the byte slice into
	// the target Go value. A typical implementation uses json.Unmarshal
	// or a high-performance alternative such as sonic or jsoniter.
	JsonDecoder DecoderFunc

	// JsonEncoder is the default function used to encode a Go value into
	// JSON format. It should return the marshaled byte slice that can be
	// directly written to the response. Set the "Content-Type" to
	// "application/json" before sending the bytes.
	JsonEncoder EncoderFunc

	// JsonIndent is an optional function used to pretty-print JSON output.
	// It takes a Go value, prefix, and indent string to format the output
	// for better readability. Typically wraps json.MarshalIndent or similar.
	JsonIndent IndentFunc

	// SecureJSONPrefix holds a prefix for guarding JSON responses against
	// JSON hijacking. Common value: "while(1);" (the default set by New).
	// SendJSON does not write it: its output starts with the encoded JSON.
	SecureJSONPrefix string

	// XmlDecoder is the default function used to decode an XML payload
	// from the request body. It should unmarshal the byte slice into
	// the target Go value. Typically wraps encoding/xml.Unmarshal or
	// a faster XML decoder.
	XmlDecoder DecoderFunc

	// XmlEncoder is the default function used to encode a Go value into
	// XML format. It should return the marshaled byte slice that can be
	// written directly to the response. You should set the
	// "Content-Type" to "application/xml" or "text/xml" before writing.
	XmlEncoder EncoderFunc

	// XmlIndent is an optional function used to pretty-print XML output.
	// It takes a Go value, prefix, and indent string to format the output.
	// Usually wraps xml.MarshalIndent or any compatible alternative.
	XmlIndent IndentFunc
}

// New creates and returns a new Zeno instance with default settings,
// initializes the per-method trees, not found handlers, and context pooling.
func New() *Zeno {
	z := &Zeno{
		trees:            make(map[string]*patricia.Tree[[]Handler]),
		routes:           make(map[string]*Route),
		JsonDecoder:      sonic.Unmarshal,
		JsonEncoder:      sonic.Marshal,
		JsonIndent:       sonic.MarshalIndent,
		XmlEncoder:       xml.Marshal,
		XmlDecoder:       xml.Unmarshal,
		XmlIndent:        xml.MarshalIndent,
		SecureJSONPrefix: "while(1);",
	}
	z.RouteGroup = *NewGroup("", z, nil)
	z.pool.New = func() any {
		return &Context{zeno: z}
	}
	z.toString = func(b []byte) string {
		return *(*string)(unsafe.Pointer(&b))
	}
	z.NotFound(MethodNotAllowedHandler, NotFoundHandler)
	z.ErrorHandler = func(c *Context, err error) error {
		if httpErr, ok := err.(HTTPError); ok {
			return c.Status(httpErr.StatusCode()).SendString(httpErr.Error())
		}
		return c.Status(StatusInternalServerError).SendString("Internal Server Error")
	}
	return z
}

// Use appends the specified handlers to the root middleware chain. They
// run for routes registered on the root group afterward and for the
// not-found chain; routes registered before the call keep their chains.
func (z *Zeno) Use(handlers ...Handler) {
	z.RouteGroup.Use(handlers...)
	z.notFoundHandlers = combineHandlers(z.handlers, z.notFound)
}

// GetRoute returns a named route by name.
func (z *Zeno) GetRoute(name string) *Route {
	return z.routes[name]
}

// NotFound sets the handler(s) to be used when no route is matched.
// The final notFound handler chain includes global middleware.
func (z *Zeno) NotFound(handlers ...Handler) {
	z.notFound = handlers
	z.notFoundHandlers = combineHandlers(z.handlers, z.notFound)
}

// find attempts to locate a handler chain for the given method and path.
// If no match is found, the notFound handler chain is returned, paired
// with a nil lookup result.
func (z *Zeno) find(method, path string) ([]Handler, *patricia.LookupResult[[]Handler]) {
	if t := z.trees[method]; t != nil {
		result := t.Lookup(path)
		if payload := result.Payload(); payload != nil {
			return *payload, result
		}
	}
	return z.notFoundHandlers, nil
}

// findAllowedMethods returns the set of HTTP methods registered against
// path, regardless of whether the requested method matched. Used to
// populate the "Allow" header on a 405 response.
func (z *Zeno) findAllowedMethods(path string) map[string]bool {
	methods := make(map[string]bool)
	for method, t := range z.trees {
		if t.Lookup(path).Payload() != nil {
			methods[method] = true
		}
	}
	return methods
}

// HandleRequest is the main request entry point for fasthttp.
// It acquires a context from the pool, performs route matching,
// executes the handler chain, and handles any returned errors.
func (z *Zeno) HandleRequest(ctx *fasthttp.RequestCtx) {
	c := z.pool.Get().(*Context)
	defer z.pool.Put(c)

	c.init(ctx)
	c.handlers, c.result = z.find(z.toString(ctx.Method()), z.toString(ctx.Path()))

	if err := c.Next(); err != nil {
		if z.ErrorHandler != nil {
			if handleErr := z.ErrorHandler(c, err); handleErr != nil {
				c.SendStatusCode(StatusInternalServerError)
			}
		} else {
			c.SendStatusCode(StatusInternalServerError)
		}
	}
}

// add registers a handler chain in the routing tree for the given HTTP
// method. Duplicate patterns and ambiguous named-parameter siblings are
// programmer errors and panic immediately, matching the tree's own
// fail-fast registration contract.
func (z *Zeno) add(method, path string, handlers []Handler) {
	t := z.trees[method]
	if t == nil {
		t = patricia.New[[]Handler]()
		z.trees[method] = t
	}
	if err := t.Insert(path, handlers); err != nil {
		panic(fmt.Sprintf("adapter: registering %s %s: %v", method, path, err))
	}
}

// NotFoundHandler is the default fallback handler that returns 404.
func NotFoundHandler(*Context) error {
	return ErrNotFound()
}

// MethodNotAllowedHandler builds and sets the "Allow" header when
// a route exists for the path but not for the method. If the request
// method is not OPTIONS, it returns 405 Method Not Allowed.
func MethodNotAllowedHandler(c *Context) error {
	methods := c.Zeno().findAllowedMethods(string(c.RequestCtx.Path()))
	if len(methods) == 0 {
		return nil
	}
	methods["OPTIONS"] = true
	ms := make([]string, 0, len(methods))
	for m := range methods {
		ms = append(ms, m)
	}
	sort.Strings(ms)
	c.RequestCtx.Response.Header.Set(HeaderAllow, strings.Join(ms, ", "))
	if string(c.RequestCtx.Method()) != MethodOptions {
		c.RequestCtx.Response.SetStatusCode(StatusMethodNotAllowed)
	}
	c.Abort()
	return nil
}

// Run starts the HTTP server on the given address using fasthttp.
// If UseReusePort is true, it uses SO_REUSEPORT for load balancing across processes.
func (z *Zeno) Run(addr string) error {
	if z.UseReusePort {
		ln, err := reuseport.Listen("tcp4", addr)
		if err != nil {
			return err
		}
		return fasthttp.Serve(ln, z.HandleRequest)
	}
	return fasthttp.ListenAndServe(addr, z.HandleRequest)
}
