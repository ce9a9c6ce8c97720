package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// KV es el medio de persistencia clave/valor. Cada clave guarda una
// colección completa serializada; la escritura reemplaza el valor anterior.
type KV interface {
	// Get devuelve el valor crudo de una clave. ok=false si no existe.
	Get(key string) (value []byte, ok bool, err error)
	// Set reemplaza el valor de una clave.
	Set(key string, value []byte) error
}

// FileKV guarda todas las claves en un único archivo JSON local
// (map de clave a valor crudo). Un archivo ausente equivale a un medio
// vacío. Sesiones paralelas no se coordinan: gana la última escritura.
type FileKV struct {
	path string
}

func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

func (f *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := f.readAll()
	if err != nil {
		return nil, false, err
	}
	raw, ok := data[key]
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}

func (f *FileKV) Set(key string, value []byte) error {
	data, err := f.readAll()
	if err != nil {
		// Un archivo ilegible no debe bloquear la escritura: se parte
		// de un medio vacío.
		data = map[string]json.RawMessage{}
	}
	data[key] = json.RawMessage(value)

	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("serializar medio kv: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio de datos: %w", err)
		}
	}
	if err := os.WriteFile(f.path, out, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", f.path, err)
	}
	return nil
}

func (f *FileKV) readAll() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", f.path, err)
	}
	data := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsear %s: %w", f.path, err)
	}
	return data, nil
}
