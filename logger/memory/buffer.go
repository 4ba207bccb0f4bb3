package memory

import (
	"bufio"
	"bytes"
	"encoding/json"
	"sync"
)

// Buffer is a zap sink which keeps records in memory
type Buffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (s *Buffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *Buffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func (s *Buffer) Reset() {
	s.mu.Lock()
	s.buf.Reset()
	s.mu.Unlock()
}

// Entries decodes every json record written to the buffer
func (s *Buffer) Entries() ([]map[string]interface{}, error) {

	s.mu.Lock()
	data := append([]byte(nil), s.buf.Bytes()...)
	s.mu.Unlock()

	retval := make([]map[string]interface{}, 0)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if len(bytes.TrimSpace(scanner.Bytes())) == 0 {
			continue
		}

		entry := map[string]interface{}{}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			return nil, err
		}
		retval = append(retval, entry)
	}

	return retval, scanner.Err()
}

func (s *Buffer) Close() error { return nil }
func (s *Buffer) Sync() error  { return nil }
