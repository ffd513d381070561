package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordquiz/chord"
	"github.com/jsphweid/chordquiz/clef"
	"github.com/jsphweid/chordquiz/constants"
	"github.com/jsphweid/chordquiz/logger"
	"github.com/jsphweid/chordquiz/midi"
	"github.com/jsphweid/chordquiz/model"
	"github.com/jsphweid/chordquiz/pitch"
	"github.com/jsphweid/chordquiz/render"
	"github.com/jsphweid/chordquiz/sample"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $CHORDQUIZ_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves chords over HTTP",
	Long:  `Serves random quiz chords and chord renderings over HTTP`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = constants.GetAddr()
		}
		logger.Get().Info("serving", "addr", addr)
		return http.ListenAndServe(addr, NewRouter(time.Now().UnixNano(), renderOptions()))
	},
}

var contentTypes = map[string]string{
	"svg": "image/svg+xml",
	"png": "image/png",
	"mid": "audio/midi",
}

type server struct {
	mu   sync.Mutex
	rng  *rand.Rand
	opts render.Options
}

// NewRouter returns the HTTP API. seed drives the random chord choice.
func NewRouter(seed int64, opts render.Options) http.Handler {
	s := &server{rng: rand.New(rand.NewSource(seed)), opts: opts}
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chords/random", s.handleRandomChord).Methods("GET")
	router.HandleFunc("/chords/{root}/{quality}.{format:svg|png|mid}", s.handleChord).Methods("GET")
	return cors.Default().Handler(router)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func (s *server) nextChord(allowDouble bool) (chord.Chord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sampler := sample.Sampler{Rand: s.rng, AllowDouble: allowDouble}
	return sampler.Next()
}

func (s *server) handleRandomChord(w http.ResponseWriter, r *http.Request) {
	allowDouble := constants.GetAllowDouble()
	if v := r.URL.Query().Get("double"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.New("double must be true or false"))
			return
		}
		allowDouble = b
	}

	c, err := s.nextChord(allowDouble)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	summary, err := Summarize(c)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	res := model.RandomChordResponse{
		Id:    uuid.New().String(),
		Chord: summary,
		Svg:   c.Drawing().SVG(),
	}
	logger.Get().Info("random chord", "id", res.Id, "chord", res.Chord.Name)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (s *server) handleChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	c, err := ParseChord(vars["root"], vars["quality"])
	switch {
	case errors.Is(err, pitch.ErrInvalidPitch), errors.Is(err, chord.ErrUnknownQuality):
		writeError(w, http.StatusNotFound, err)
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var buf bytes.Buffer
	format := vars["format"]
	if format == "mid" {
		err = midi.Write(&buf, c)
	} else {
		err = writeRendering(&buf, c, r.URL.Query().Get("clef"), format, s.opts)
	}
	switch {
	case errors.Is(err, clef.ErrUnknownClef), errors.Is(err, midi.ErrOutOfRange):
		writeError(w, http.StatusBadRequest, err)
		return
	case err != nil:
		logger.Get().Warn("rendering failed", "chord", c.DisplayName(), "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Write(buf.Bytes())
}
