// Command benchmark drives the core wire protocol directly over TCP,
// the way the teacher's own benchmark tool drove a RESP client — except
// the listener here speaks the u8-command/u64-db-id/statement frame, not
// RESP, so this dials raw sockets and builds frames with internal/wire
// instead of using a redis client.
package main

import (
	"encoding/binary"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/ledgerdb/ledgerdb/internal/database"
	"github.com/ledgerdb/ledgerdb/internal/wire"
)

type BenchmarkConfig struct {
	Address       string `json:"address"`
	NumOperations int    `json:"num_operations"`
	NumClients    int    `json:"num_clients"`
	KeySize       int    `json:"key_size"`
	ValueSize     int    `json:"value_size"`
}

type CommandResult struct {
	Command      string        `json:"command"`
	TotalOps     int           `json:"total_ops"`
	Duration     time.Duration `json:"duration"`
	OpsPerSecond float64       `json:"ops_per_second"`
	AvgLatency   time.Duration `json:"avg_latency"`
	P95Latency   time.Duration `json:"p95_latency"`
	P99Latency   time.Duration `json:"p99_latency"`
	MinLatency   time.Duration `json:"min_latency"`
	MaxLatency   time.Duration `json:"max_latency"`
	ErrorCount   int           `json:"error_count"`
	SuccessRate  float64       `json:"success_rate"`
}

type SystemMetrics struct {
	MemoryUsageMB float64   `json:"memory_usage_mb"`
	Timestamp     time.Time `json:"timestamp"`
}

type BenchmarkResult struct {
	Config        BenchmarkConfig `json:"config"`
	Commands      []CommandResult `json:"commands"`
	SystemMetrics SystemMetrics   `json:"system_metrics"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	TotalDuration time.Duration   `json:"total_duration"`
}

func main() {
	var (
		address    = flag.String("addr", "127.0.0.1:9090", "ledgerdbd core address")
		numOps     = flag.Int("ops", 10000, "Number of operations per command")
		numClients = flag.Int("clients", 10, "Number of concurrent clients")
		keySize    = flag.Int("keysize", 16, "Key size in bytes")
		valueSize  = flag.Int("valuesize", 64, "Value size in bytes")
		outputDir  = flag.String("output", "", "Output directory for results")
	)
	flag.Parse()

	if *outputDir == "" {
		*outputDir = filepath.Join("benchmarks", "results", time.Now().Format("2006-01-02"))
	}

	config := BenchmarkConfig{
		Address:       *address,
		NumOperations: *numOps,
		NumClients:    *numClients,
		KeySize:       *keySize,
		ValueSize:     *valueSize,
	}

	fmt.Printf("Starting benchmark against %s\n", config.Address)
	fmt.Printf("Operations: %d, Clients: %d, Key size: %d, Value size: %d\n",
		config.NumOperations, config.NumClients, config.KeySize, config.ValueSize)

	probe, err := net.Dial("tcp", config.Address)
	if err != nil {
		log.Fatalf("failed to connect to server: %v", err)
	}
	probe.Close()

	result := BenchmarkResult{
		Config:    config,
		StartTime: time.Now(),
	}

	commands := []string{"SET", "GET", "DEL", "INCR", "APPEND", "LPUSH"}

	for _, cmd := range commands {
		fmt.Printf("\nRunning %s benchmark...\n", cmd)
		cmdResult := runCommandBenchmark(cmd, config)
		result.Commands = append(result.Commands, cmdResult)

		fmt.Printf("%s: %.2f ops/sec, avg latency: %v\n",
			cmd, cmdResult.OpsPerSecond, cmdResult.AvgLatency)
	}

	result.EndTime = time.Now()
	result.TotalDuration = result.EndTime.Sub(result.StartTime)
	result.SystemMetrics = getSystemMetrics()

	if err := saveResults(result, *outputDir); err != nil {
		log.Fatalf("failed to save results: %v", err)
	}

	fmt.Printf("\nBenchmark completed in %v\n", result.TotalDuration)
	fmt.Printf("Results saved to: %s\n", *outputDir)
}

// dial opens a fresh connection per client, matching how real clients of
// the core protocol are expected to hold one long-lived socket each.
func dial(address string) (net.Conn, error) {
	return net.Dial("tcp", address)
}

func frameFor(command string, key, value []byte) []byte {
	switch command {
	case "SET":
		return wire.Build(wire.Set, 0, database.EncodeArgs(key, value))
	case "GET":
		return wire.Build(wire.Get, 0, database.EncodeArgs(key))
	case "DEL":
		return wire.Build(wire.Del, 0, database.EncodeArgs(key))
	case "INCR":
		return wire.Build(wire.Incr, 0, database.EncodeArgs(key))
	case "APPEND":
		return wire.Build(wire.Append, 0, database.EncodeArgs(key, value))
	case "LPUSH":
		return wire.Build(wire.LPush, 0, database.EncodeArgs(key, value))
	default:
		panic("unknown benchmark command " + command)
	}
}

func runCommandBenchmark(command string, config BenchmarkConfig) CommandResult {
	var wg sync.WaitGroup
	var mu sync.Mutex

	latencies := make([]time.Duration, 0, config.NumOperations)
	errorCount := 0

	opsPerClient := config.NumOperations / config.NumClients
	startTime := time.Now()

	for i := 0; i < config.NumClients; i++ {
		wg.Add(1)
		go func(clientID int) {
			defer wg.Done()

			conn, err := dial(config.Address)
			if err != nil {
				mu.Lock()
				errorCount += opsPerClient
				mu.Unlock()
				return
			}
			defer conn.Close()

			for j := 0; j < opsPerClient; j++ {
				key := []byte(fmt.Sprintf("bench:%s:%d:%d", command, clientID, j))
				value := generateValue(config.ValueSize)

				if command != "SET" {
					sendFrame(conn, frameFor("SET", key, value))
					readFrame(conn)
				}

				opStart := time.Now()
				sendFrame(conn, frameFor(command, key, value))
				_, err := readFrame(conn)
				latency := time.Since(opStart)

				mu.Lock()
				latencies = append(latencies, latency)
				if err != nil {
					errorCount++
				}
				mu.Unlock()
			}
		}(i)
	}

	wg.Wait()
	duration := time.Since(startTime)

	return calculateResults(command, latencies, duration, errorCount, config.NumOperations)
}

// sendFrame and readFrame speak the same u64-length-prefixed socket
// framing as internal/transport/tcp — duplicated here deliberately since
// this is a standalone client binary, not a server-side package.
func sendFrame(conn net.Conn, payload []byte) error {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(payload)))
	if _, err := conn.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := conn.Write(payload)
	return err
}

func readFrame(conn net.Conn) ([]byte, error) {
	var lenBuf [8]byte
	if _, err := io.ReadFull(conn, lenBuf[:]); err != nil {
		return nil, err
	}
	size := binary.LittleEndian.Uint64(lenBuf[:])
	buf := make([]byte, size)
	if _, err := io.ReadFull(conn, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func calculateResults(command string, latencies []time.Duration, duration time.Duration, errorCount, totalOps int) CommandResult {
	if len(latencies) == 0 {
		return CommandResult{
			Command:    command,
			TotalOps:   totalOps,
			Duration:   duration,
			ErrorCount: errorCount,
		}
	}

	var totalLatency time.Duration
	minLatency := latencies[0]
	maxLatency := latencies[0]

	for _, lat := range latencies {
		totalLatency += lat
		if lat < minLatency {
			minLatency = lat
		}
		if lat > maxLatency {
			maxLatency = lat
		}
	}

	avgLatency := totalLatency / time.Duration(len(latencies))

	sortedLatencies := make([]time.Duration, len(latencies))
	copy(sortedLatencies, latencies)
	sort.Slice(sortedLatencies, func(i, j int) bool { return sortedLatencies[i] < sortedLatencies[j] })

	p95Index := int(float64(len(sortedLatencies)) * 0.95)
	p99Index := int(float64(len(sortedLatencies)) * 0.99)
	if p95Index >= len(sortedLatencies) {
		p95Index = len(sortedLatencies) - 1
	}
	if p99Index >= len(sortedLatencies) {
		p99Index = len(sortedLatencies) - 1
	}

	successOps := totalOps - errorCount
	opsPerSecond := float64(successOps) / duration.Seconds()
	successRate := float64(successOps) / float64(totalOps) * 100

	return CommandResult{
		Command:      command,
		TotalOps:     totalOps,
		Duration:     duration,
		OpsPerSecond: opsPerSecond,
		AvgLatency:   avgLatency,
		P95Latency:   sortedLatencies[p95Index],
		P99Latency:   sortedLatencies[p99Index],
		MinLatency:   minLatency,
		MaxLatency:   maxLatency,
		ErrorCount:   errorCount,
		SuccessRate:  successRate,
	}
}

func generateValue(size int) []byte {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, size)
	for i := range b {
		b[i] = charset[i%len(charset)]
	}
	return b
}

func getSystemMetrics() SystemMetrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return SystemMetrics{
		MemoryUsageMB: float64(m.Alloc) / 1024 / 1024,
		Timestamp:     time.Now(),
	}
}

func saveResults(result BenchmarkResult, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	timestamp := result.StartTime.Format("15-04-05")
	filename := filepath.Join(outputDir, fmt.Sprintf("benchmark_%s.json", timestamp))

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}
