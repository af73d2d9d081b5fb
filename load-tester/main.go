package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Load generator for the analytics endpoints: fires randomized vendor/date
// range queries and reports throughput and latency.

type Config struct {
	BaseURL     string
	Total       int
	Rate        int
	Concurrency int
	Vendors     int
	Days        int
}

func parseFlags() *Config {
	c := &Config{}
	flag.StringVar(&c.BaseURL, "base-url", "", "Service base URL (required), e.g. http://localhost:8080")
	flag.IntVar(&c.Total, "total", 5000, "Total requests")
	flag.IntVar(&c.Rate, "rate", 200, "Requests per second")
	flag.IntVar(&c.Concurrency, "concurrency", 0, "Worker count (0=auto)")
	flag.IntVar(&c.Vendors, "vendors", 5, "Vendor id pool size (matches the seeder)")
	flag.IntVar(&c.Days, "days", 60, "Maximum query window in days")
	flag.Parse()

	if c.BaseURL == "" {
		fmt.Fprintln(os.Stderr, "Error: -base-url is required")
		flag.Usage()
		os.Exit(1)
	}

	if c.Concurrency == 0 {
		c.Concurrency = c.Rate / 10
		if c.Concurrency < 10 {
			c.Concurrency = 10
		}
	}

	return c
}

type Stats struct {
	ok      uint64
	errors  uint64
	latency int64 // microseconds, summed
}

var paths = []string{"/analytics/payments", "/analytics/conversions", "/analytics/insights"}

func randomTarget(cfg *Config) string {
	path := paths[rand.Intn(len(paths))]

	q := url.Values{}
	if rand.Intn(4) > 0 { // most queries scope a vendor
		q.Set("vendor_id", fmt.Sprintf("vendor-%03d", rand.Intn(cfg.Vendors)+1))
	}
	if rand.Intn(2) == 0 { // half use an explicit window
		to := time.Now().UTC()
		from := to.AddDate(0, 0, -(rand.Intn(cfg.Days) + 1))
		q.Set("from", fmt.Sprintf("%d", from.Unix()))
		q.Set("to", fmt.Sprintf("%d", to.Unix()))
	}

	target := cfg.BaseURL + path
	if encoded := q.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}

func main() {
	cfg := parseFlags()

	client := &http.Client{
		Timeout: 10 * time.Second,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: cfg.Concurrency,
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
		},
	}

	stats := &Stats{}
	jobs := make(chan string, cfg.Rate)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for target := range jobs {
				start := time.Now()
				resp, err := client.Get(target)
				elapsed := time.Since(start)

				if err != nil {
					atomic.AddUint64(&stats.errors, 1)
					continue
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()

				if resp.StatusCode == http.StatusOK {
					atomic.AddUint64(&stats.ok, 1)
					atomic.AddInt64(&stats.latency, elapsed.Microseconds())
				} else {
					atomic.AddUint64(&stats.errors, 1)
				}
			}
		}()
	}

	started := time.Now()
	ticker := time.NewTicker(time.Second / time.Duration(cfg.Rate))
	for i := 0; i < cfg.Total; i++ {
		<-ticker.C
		jobs <- randomTarget(cfg)
	}
	ticker.Stop()
	close(jobs)
	wg.Wait()

	elapsed := time.Since(started)
	ok := atomic.LoadUint64(&stats.ok)
	errs := atomic.LoadUint64(&stats.errors)

	fmt.Printf("requests: %d ok, %d errors in %s (%.1f rps)\n", ok, errs, elapsed.Round(time.Millisecond), float64(ok+errs)/elapsed.Seconds())
	if ok > 0 {
		avg := time.Duration(atomic.LoadInt64(&stats.latency)/int64(ok)) * time.Microsecond
		fmt.Printf("avg latency: %s\n", avg)
	}
}
