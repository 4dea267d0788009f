package server

import (
	"sort"
	"strings"
)

// LogRoutes logs the registered route table at startup, sorted by path then
// method, with handler names cleaned up for readability.
func (s *Server) LogRoutes() {
	routes := s.engine.Routes()

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return methodOrder(routes[i].Method) < methodOrder(routes[j].Method)
	})

	for _, r := range routes {
		s.log.Info("Route registered", map[string]interface{}{
			"method":  r.Method,
			"path":    r.Path,
			"handler": formatHandlerName(r.Handler),
		})
	}
}

// formatHandlerName extracts a clean handler name from Gin's full handler
// path. Gin stores handlers like:
//
//	"github.com/kbukum/apibase/server.(*Handlers).Token-fm"
//
// We extract: "Handlers.Token".
func formatHandlerName(fullPath string) string {
	// Remove -fm suffix Gin adds to method values
	name := strings.TrimSuffix(fullPath, "-fm")

	// Get the last segment after /
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}

	// Clean up Go receiver notation: "(*Handlers).Token" → "Handlers.Token"
	name = strings.ReplaceAll(name, "(*", "")
	name = strings.ReplaceAll(name, ")", "")

	// Simplify closure names like "Gate.Middleware.func1" to the last
	// meaningful part
	if strings.Contains(name, ".func") {
		parts := strings.Split(name, ".")
		for i := len(parts) - 1; i >= 0; i-- {
			if !strings.HasPrefix(parts[i], "func") {
				name = strings.ToLower(parts[i])
				break
			}
		}
	}

	// Remove package prefix: "server.Handlers.Token" → "Handlers.Token"
	parts := strings.SplitN(name, ".", 2)
	if len(parts) == 2 {
		hasUpper := false
		for _, c := range parts[0] {
			if c >= 'A' && c <= 'Z' {
				hasUpper = true
				break
			}
		}
		if !hasUpper && len(parts[1]) > 0 {
			name = parts[1]
		}
	}

	return name
}

// methodOrder returns a sort key for HTTP methods (GET first, DELETE last).
func methodOrder(method string) int {
	switch method {
	case "GET":
		return 0
	case "POST":
		return 1
	case "PUT":
		return 2
	case "PATCH":
		return 3
	case "DELETE":
		return 4
	default:
		return 5
	}
}
