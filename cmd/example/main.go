package main

import "github.com/tobyapi/patricia-router/adapter"

func main() {
	z := adapter.New()
	z.Get("/", func(ctx *adapter.Context) error {
		return ctx.SendJSON(map[string]string{"message": "Hello, World"})
	})
	z.Get("/users/:id", func(ctx *adapter.Context) error {
		return ctx.SendJSON(map[string]string{"id": ctx.Param("id")})
	})
	z.Get("/static/*filepath", func(ctx *adapter.Context) error {
		return ctx.SendString("serving " + ctx.Param("filepath"))
	})
	z.Run(":3000")
}
