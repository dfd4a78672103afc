package breach

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// testDump is a tiny breach dump covering two k-anonymity buckets,
// including SHA-1("password").
const testDump = "5BAA6" + passwordSuffix + ":9545824\n" +
	"5BAA60018A45C4D1DEF81644B54AB7F969B88D65:152\n" +
	"00000A1B2C3D4E5F60718293A4B5C6D7E8F90A1B:3\n"

func openTestCorpus(t *testing.T) *LocalCorpus {
	t.Helper()

	corpus, err := OpenLocal(t.TempDir(), DefaultLocalOptions())
	if err != nil {
		t.Fatalf("OpenLocal() error = %v", err)
	}
	t.Cleanup(func() { _ = corpus.Close() })
	return corpus
}

func TestLocalCorpus(t *testing.T) {
	t.Parallel()

	t.Run("import then range lookup", func(t *testing.T) {
		t.Parallel()

		corpus := openTestCorpus(t)
		n, err := corpus.ImportDump(context.Background(), strings.NewReader(testDump))
		if err != nil {
			t.Fatalf("ImportDump() error = %v", err)
		}
		if n != 3 {
			t.Errorf("ImportDump() = %d, want 3", n)
		}

		bucket, err := corpus.LookupRange(context.Background(), passwordPrefix)
		if err != nil {
			t.Fatalf("LookupRange() error = %v", err)
		}
		if len(bucket) != 2 {
			t.Errorf("bucket size = %d, want 2", len(bucket))
		}
		if bucket[passwordSuffix] != 9545824 {
			t.Errorf("count = %d, want 9545824", bucket[passwordSuffix])
		}
	})

	t.Run("check against the local corpus", func(t *testing.T) {
		t.Parallel()

		corpus := openTestCorpus(t)
		if _, err := corpus.ImportDump(context.Background(), strings.NewReader(testDump)); err != nil {
			t.Fatalf("ImportDump() error = %v", err)
		}

		got, err := Check(context.Background(), corpus, "password")
		if err != nil {
			t.Fatalf("Check() error = %v", err)
		}
		if !got.Exposed || got.Count != 9545824 || !got.CountKnown {
			t.Errorf("Check() = %+v, want exposed with count 9545824", got)
		}
	})

	t.Run("empty bucket for unseen prefix", func(t *testing.T) {
		t.Parallel()

		corpus := openTestCorpus(t)
		bucket, err := corpus.LookupRange(context.Background(), "FFFFF")
		if err != nil {
			t.Fatalf("LookupRange() error = %v", err)
		}
		if len(bucket) != 0 {
			t.Errorf("bucket = %v, want empty", bucket)
		}
	})

	t.Run("reimport replaces counts", func(t *testing.T) {
		t.Parallel()

		corpus := openTestCorpus(t)
		ctx := context.Background()
		if _, err := corpus.ImportDump(ctx, strings.NewReader(testDump)); err != nil {
			t.Fatalf("ImportDump() error = %v", err)
		}
		updated := "5BAA6" + passwordSuffix + ":10000000\n"
		if _, err := corpus.ImportDump(ctx, strings.NewReader(updated)); err != nil {
			t.Fatalf("ImportDump() error = %v", err)
		}

		bucket, err := corpus.LookupRange(ctx, passwordPrefix)
		if err != nil {
			t.Fatalf("LookupRange() error = %v", err)
		}
		if bucket[passwordSuffix] != 10000000 {
			t.Errorf("count = %d, want replaced value 10000000", bucket[passwordSuffix])
		}
	})

	t.Run("malformed dump line fails the import", func(t *testing.T) {
		t.Parallel()

		corpus := openTestCorpus(t)
		_, err := corpus.ImportDump(context.Background(), strings.NewReader("short:1\n"))
		if !errors.Is(err, ErrMalformedRange) {
			t.Errorf("ImportDump() error = %v, want ErrMalformedRange", err)
		}
	})

	t.Run("stats reflect imports", func(t *testing.T) {
		t.Parallel()

		corpus := openTestCorpus(t)
		ctx := context.Background()
		if _, err := corpus.ImportDump(ctx, strings.NewReader(testDump)); err != nil {
			t.Fatalf("ImportDump() error = %v", err)
		}

		stats, err := corpus.Stats(ctx)
		if err != nil {
			t.Fatalf("Stats() error = %v", err)
		}
		if stats.Hashes != 3 || stats.Prefixes != 2 || stats.Imports != 1 {
			t.Errorf("Stats() = %+v, want 3 hashes, 2 prefixes, 1 import", stats)
		}
	})

	t.Run("closed corpus rejects lookups", func(t *testing.T) {
		t.Parallel()

		corpus := openTestCorpus(t)
		if err := corpus.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if _, err := corpus.LookupRange(context.Background(), passwordPrefix); !errors.Is(err, ErrCorpusClosed) {
			t.Errorf("LookupRange() error = %v, want ErrCorpusClosed", err)
		}
		if err := corpus.Close(); err != nil {
			t.Errorf("second Close() error = %v, want nil", err)
		}
	})

	t.Run("missing corpus without create option", func(t *testing.T) {
		t.Parallel()

		opts := LocalOptions{CreateIfNotExists: false, EnableWAL: false}
		if _, err := OpenLocal(t.TempDir(), opts); err == nil {
			t.Error("OpenLocal() error = nil, want error for missing corpus")
		}
	})
}
