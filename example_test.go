package conf_test

import (
	"fmt"
	"os"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/accessor"
	"github.com/0xalexb/hjarta-conf/logging"

	"go.uber.org/fx"
)

func ExampleGetYAMLFromString() {
	root, err := conf.GetYAMLFromString("app_name: X\nsize: 4000\nnsize: -1\nread_all: true")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)

		return
	}

	fmt.Println(accessor.Bool(root.Get("read_all"), false))
	fmt.Println(accessor.Uint32(root.Get("size"), 0))
	fmt.Println(accessor.Uint32(root.Get("nsize"), 100))
	fmt.Println(accessor.Int32(root.Get("nsize"), 0))
	fmt.Println(accessor.Uint32(root.Get("missing"), 7))
	// Output:
	// true
	// 4000
	// 0
	// -1
	// 7
}

func ExampleGetYAML() {
	// HJARTA_CONF_EXAMPLE_CONFIG is not set, so the fallback path is used.
	root, err := conf.GetYAML("HJARTA_CONF_EXAMPLE_CONFIG", "testdata/test-config.yml")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)

		return
	}

	logger := logging.NewLogger(logging.LoggerConfig{Level: "error"}, os.Stdout)

	fmt.Println(accessor.String(root.Get("app_name"), ""))
	fmt.Println(accessor.Strings(logger, root.Get("tools")))
	// Output:
	// BACHUETECH AI
	// [do_math_expressions search_web read_file]
}

// ServerService is a service reading its settings from the configuration document.
type ServerService struct {
	Name        string
	BufferSize  uint32
	Connections uint32
}

func ExampleNewModule() {
	var service *ServerService

	app := fx.New(
		fx.NopLogger,
		conf.NewModule(
			conf.WithEnvVariable("HJARTA_CONF_EXAMPLE_CONFIG"),
			conf.WithFallbackPath("testdata/test-config.yml"),
			conf.WithLogLevel("error"),
		),
		fx.Provide(func(cfg *conf.Config) *ServerService {
			return &ServerService{
				Name:        cfg.String("app_name", "unnamed"),
				BufferSize:  cfg.Uint32("size", 1024),
				Connections: cfg.Uint32("limits:max_connections", 100),
			}
		}),
		fx.Populate(&service),
	)

	if err := app.Err(); err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	fmt.Printf("%s: buffer=%d connections=%d\n", service.Name, service.BufferSize, service.Connections)
	// Output:
	// BACHUETECH AI: buffer=4000 connections=4294967295
}
