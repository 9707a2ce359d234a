package httpserver

import (
	"net/http"
	"os"

	"github.com/pkg/errors"
)

// ServeStatic mounts a board UI from dir under /web/ and redirects / there.
// It must be called before the server starts handling requests.
func (s *Server) ServeStatic(dir string) error {
	st, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(err, "static dir")
	}
	if !st.IsDir() {
		return errors.Errorf("static dir %q is not a directory", dir)
	}

	s.mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir(dir))))
	s.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/", "/web":
			http.Redirect(w, r, "/web/", http.StatusFound)
		default:
			http.NotFound(w, r)
		}
	})
	return nil
}
