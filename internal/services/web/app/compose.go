package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/gametrade/internal/services/web/module"
	"github.com/louisbranch/gametrade/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

// ComposeInput carries the page modules and shared composition contracts.
type ComposeInput struct {
	Modules []module.Module
	// NotFound serves paths no module owns. It is ignored when a module
	// mounts the root prefix.
	NotFound            http.Handler
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds a root HTTP handler from the page modules.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	wrap := requireSameOriginMutation(input.RequestSchemePolicy)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if err := mountModule(root, feature, mount, prefix, seen, wrap); err != nil {
			return nil, err
		}
		if alias := slashlessPrefixAlias(prefix); alias != "" {
			if err := mountModule(root, feature, mount, alias, seen, wrap); err != nil {
				return nil, err
			}
		}
	}

	if _, ok := seen[routepath.Root]; !ok {
		notFound := input.NotFound
		if notFound == nil {
			notFound = http.NotFoundHandler()
		}
		root.Handle(routepath.Root, notFound)
	}
	return root, nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	mount module.Mount,
	prefix string,
	seen map[string]string,
	wrap func(http.Handler) http.Handler,
) error {
	if root == nil || feature == nil {
		return nil
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()

	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	root.Handle(prefix, handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

// slashlessPrefixAlias maps "/rules/" to "/rules" so the bare page path
// reaches the module without a redirect. The root prefix has no alias.
func slashlessPrefixAlias(prefix string) string {
	if prefix == routepath.Root || !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}

func requireSameOriginMutation(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isMutationMethod(r) && requestmeta.IsCrossOrigin(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
