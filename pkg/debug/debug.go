package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	path string
	fh   *os.File
)

// Enable directs diagnostics to the named file. Until Enable is called,
// diagnostics go to the standard logger.
func Enable(filename string) {
	mu.Lock()
	defer mu.Unlock()
	path = filename
}

func open() {
	if fh != nil || path == "" {
		return
	}
	var err error
	fh, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("error opening debug log: %v", err)
		path = ""
	}
}

func Log(msg string) {
	_, fullPath, line, ok := runtime.Caller(1)
	if ok {
		msg = fmt.Sprintf("%s:%d %s", filepath.Base(fullPath), line, msg)
	}
	LogRaw(msg)
}

func Logf(format string, args ...any) {
	_, fullPath, line, ok := runtime.Caller(1)
	msg := fmt.Sprintf(format, args...)
	if ok {
		msg = fmt.Sprintf("%s:%d %s", filepath.Base(fullPath), line, msg)
	}
	LogRaw(msg)
}

func LogRaw(msg string) {
	mu.Lock()
	defer mu.Unlock()
	open()
	if fh == nil {
		log.Print("debug: " + msg)
		return
	}
	fh.WriteString(time.Now().Format("2006-01-02 15:04:05.000") + " " + msg + "\n")
}

// Do runs f and logs instead of crashing if it panics.
func Do(f func()) {
	defer func() {
		if r := recover(); r != nil {
			LogRaw(fmt.Sprintf("recovered: %v", r))
		}
	}()
	f()
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if fh == nil {
		return
	}
	fh.Sync()
	fh.Close()
	fh = nil
}
