package admin_test

import (
	"context"
	"fmt"
	"net"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"github.com/ledgerdb/ledgerdb/internal/admin"
)

type fakeManager struct {
	count int
	sizes map[uint64]int
}

func (f *fakeManager) DatabaseCountLive() int { return f.count }
func (f *fakeManager) Size(id uint64) int     { return f.sizes[id] }

var _ = Describe("Admin listener", func() {
	var (
		manager *fakeManager
		server  *admin.Server
		client  *redis.Client
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		manager = &fakeManager{count: 16, sizes: map[uint64]int{0: 3, 5: 1}}
		server = admin.NewServer(manager, func() admin.Snapshot {
			return admin.Snapshot{SnapshotsTaken: 2, RecordsWritten: 7, BytesWritten: 512}
		})

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		addr := listener.Addr().String()
		listener.Close()

		go func() {
			defer GinkgoRecover()
			server.Start(admin.Config{Address: addr})
		}()

		client = redis.NewClient(&redis.Options{Addr: addr, DialTimeout: 2 * time.Second})
		Eventually(func() error { return client.Ping(ctx).Err() }, "5s", "50ms").Should(Succeed())
	})

	AfterEach(func() {
		client.Close()
		server.Close()
	})

	It("answers PING", func() {
		result := client.Ping(ctx)
		Expect(result.Err()).NotTo(HaveOccurred())
		Expect(result.Val()).To(Equal("PONG"))
	})

	It("answers PING with the given message", func() {
		result := client.Do(ctx, "PING", "echo")
		Expect(result.Err()).NotTo(HaveOccurred())
		Expect(result.Val()).To(Equal("echo"))
	})

	It("reports DBSIZE for a live database", func() {
		result := client.Do(ctx, "DBSIZE", "0")
		Expect(result.Err()).NotTo(HaveOccurred())
		Expect(result.Val()).To(Equal(int64(3)))
	})

	It("reports zero DBSIZE for a database with no keys", func() {
		result := client.Do(ctx, "DBSIZE", "9")
		Expect(result.Err()).NotTo(HaveOccurred())
		Expect(result.Val()).To(Equal(int64(0)))
	})

	It("rejects a non-numeric DBSIZE argument", func() {
		result := client.Do(ctx, "DBSIZE", "not-a-number")
		Expect(result.Err()).To(HaveOccurred())
	})

	It("reports durability counters via INFO", func() {
		result := client.Do(ctx, "INFO")
		Expect(result.Err()).NotTo(HaveOccurred())
		info := fmt.Sprintf("%v", result.Val())
		Expect(info).To(ContainSubstring("snapshots_taken:2"))
		Expect(info).To(ContainSubstring("records_written:7"))
		Expect(info).To(ContainSubstring("bytes_written:512"))
	})

	It("rejects unknown commands", func() {
		result := client.Do(ctx, "FLUSHALL")
		Expect(result.Err()).To(HaveOccurred())
	})
})
