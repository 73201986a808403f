// Package config provides configuration management for octofit.
//
// Configuration is loaded from several YAML sources and merged in order,
// later sources overriding earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/octofit/config.yaml)
//  3. Project configuration (./.octofit/config.yaml)
//  4. An explicit file passed with --config
//
// Command-line flags are applied by the caller on top of the result.
//
// # Configuration Structure
//
//	api:
//	  baseUrl: "http://localhost:8000"   # wins over codespaceName
//	  codespaceName: "octo-space"        # https://octo-space-8000.app.github.dev
//	  requestTimeout: 0s                 # 0 = wait for the server
//	  rateLimit: 0                       # requests/second, 0 = unlimited
//	ui:
//	  initialRoute: "/"                  # or a resource name such as "teams"
//	  colorMode: "auto"                  # auto, dark, light
//	metrics:
//	  addr: ":9090"                      # empty disables /metrics
//
// # Base URL Resolution
//
// ResolveBaseURL applies a fixed rule once at startup: the --api-url flag,
// then api.baseUrl, then a codespace name (api.codespaceName, or the
// CODESPACE_NAME / REACT_APP_CODESPACE_NAME environment variables), and
// finally http://localhost:8000.
package config
