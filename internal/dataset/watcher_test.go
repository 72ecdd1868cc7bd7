package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherRefreshesOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atractivos.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	cache := NewCache(NewCSVSource(path), nil, nil)
	first, err := cache.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	w := NewWatcher(path, cache, nil)
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	// Give the watcher time to register before touching the file
	time.Sleep(100 * time.Millisecond)

	header := "NOMBRE,REGION,COMUNA,TIPO,DIRECCION,PUNTO_X,PUNTO_Y\n"
	row := "Playa Cavancha,Tarapacá,Iquique,Playa,Av. Arturo Prat,-20.2285,-70.1466\n"
	if err := os.WriteFile(path, []byte(header+row), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snap, _ := cache.Get(context.Background())
		if snap.Version != first.Version && len(snap.Records) == 1 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("cache was not refreshed after the file changed")
}
