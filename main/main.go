package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/ffibuf"
	"github.com/rawbytedev/ffibuf/pkg/hostalloc"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	alloc := hostalloc.New()
	payload := []byte("hello across the boundary")
	for i := 0; i < 10000; i++ {
		buf, err := alloc.FromBytes(payload)
		if err != nil {
			log.Fatal(err)
		}
		owned := ffibuf.NewOwned(buf, alloc)
		// hand the raw handle out and adopt it back, the way a
		// generated binding would on each side of the boundary
		raw, _ := owned.Move()
		got, err := ffibuf.BufferFromRaw(raw.Ptr(), raw.Len())
		if err != nil {
			log.Fatal(err)
		}
		_ = got.Bytes()
		if err := alloc.Release(got); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("stats: %+v", alloc.Stats())
	pprof.WriteHeapProfile(f)
}
