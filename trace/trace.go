package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/klauspost/compress/zstd"
	"github.com/oomph-ac/kinetic/internal"
	"github.com/oomph-ac/kinetic/sim"
)

// Entry is a single line of a movement trace.
type Entry struct {
	ID       uint64     `json:"id"`
	Kind     string     `json:"kind"`
	Tick     int64      `json:"tick"`
	Outcome  string     `json:"outcome"`
	Desired  mgl64.Vec3 `json:"desired"`
	Resolved mgl64.Vec3 `json:"resolved"`
	Position mgl64.Vec3 `json:"pos"`
	Velocity mgl64.Vec3 `json:"vel"`
	OnGround bool       `json:"on_ground"`
	Damage   float32    `json:"damage,omitempty"`
	Sound    string     `json:"sound,omitempty"`
	Stuck    bool       `json:"stuck,omitempty"`
	Exploded bool       `json:"exploded,omitempty"`
	Merged   int        `json:"merged,omitempty"`
}

// EntryOf converts a tick result to a trace entry.
func EntryOf(res sim.TickResult) Entry {
	return Entry{
		ID:       uint64(res.ID),
		Kind:     res.Kind.String(),
		Tick:     res.Tick,
		Outcome:  res.Outcome.String(),
		Desired:  res.Move.Desired,
		Resolved: res.Move.Resolved,
		Position: res.Move.Position,
		Velocity: res.Move.Velocity,
		OnGround: res.Move.OnGround,
		Damage:   res.Move.Damage,
		Sound:    res.Move.Sound.String(),
		Stuck:    res.Stuck,
		Exploded: res.Exploded,
		Merged:   res.Merged,
	}
}

// Writer writes tick results as zstd compressed JSON lines. It implements sim.Recorder and is safe for
// concurrent use.
type Writer struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// Create creates the trace file at path, truncating it if it exists.
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create trace directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create trace encoder: %w", err)
	}
	return &Writer{f: f, enc: enc, w: bufio.NewWriterSize(enc, 128*1024)}, nil
}

// Record writes the tick result passed as a single line.
func (w *Writer) Record(res sim.TickResult) error {
	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)
	// Encode terminates the line with a newline.
	if err := json.NewEncoder(buf).Encode(EntryOf(res)); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return os.ErrClosed
	}
	_, err := w.w.Write(buf.Bytes())
	return err
}

// Close flushes the remaining lines and closes the file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return nil
	}
	err := w.w.Flush()
	if cerr := w.enc.Close(); err == nil {
		err = cerr
	}
	if cerr := w.f.Close(); err == nil {
		err = cerr
	}
	w.w, w.enc, w.f = nil, nil, nil
	return err
}

// Read decodes every entry of the trace file at path.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open trace decoder: %w", err)
	}
	defer dec.Close()

	var entries []Entry
	scanner := bufio.NewScanner(dec)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; scanner.Scan(); line++ {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("decode trace line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	return entries, nil
}
