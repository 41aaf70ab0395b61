package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(ApplicationDataDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	got := bb.Bytes()

	assert.Equal(t, []byte("hello"), got)
	assert.True(t, &bb.B[0] == &got[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(ApplicationDataDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Len(t *testing.T) {
	bb := NewByteBuffer(ApplicationDataDefaultSize)

	assert.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, []byte("test")...)
	assert.Equal(t, 4, bb.Len())
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(ApplicationDataDefaultSize)

	bb.MustWrite([]byte("hello"))
	assert.Equal(t, []byte("hello"), bb.B)

	bb.MustWrite([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.B)
}

func TestByteBuffer_SetLength(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.SetLength(8)
	assert.Equal(t, 8, bb.Len())

	assert.Panics(t, func() { bb.SetLength(-1) })
	assert.Panics(t, func() { bb.SetLength(100) })
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(ApplicationDataDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), bb.B)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(ApplicationDataDefaultSize)
	bb.B = append(bb.B, []byte("test data")...)

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(ApplicationDataDefaultSize)
	bb.B = append(bb.B, []byte("test")...)

	ew := &errorWriter{err: io.ErrShortWrite}
	n, err := bb.WriteTo(ew)

	assert.Error(t, err)
	assert.Equal(t, io.ErrShortWrite, err)
	assert.Equal(t, int64(0), n)
}

func TestByteBuffer_Grow_SufficientCapacity(t *testing.T) {
	bb := NewByteBuffer(ApplicationDataDefaultSize)
	originalCap := cap(bb.B)

	bb.Grow(100)

	assert.Equal(t, originalCap, cap(bb.B), "should not reallocate when capacity is sufficient")
}

func TestByteBuffer_Grow_SmallBuffer(t *testing.T) {
	bb := NewByteBuffer(ApplicationDataDefaultSize)
	bb.B = append(bb.B, make([]byte, ApplicationDataDefaultSize)...)

	bb.Grow(1024)

	assert.GreaterOrEqual(t, cap(bb.B), ApplicationDataDefaultSize+1024)
	assert.Equal(t, ApplicationDataDefaultSize, len(bb.B))
}

func TestByteBuffer_Grow_LargeBuffer(t *testing.T) {
	bb := NewByteBuffer(ApplicationDataDefaultSize)
	largeSize := 4*ApplicationDataDefaultSize + 1024
	bb.B = make([]byte, largeSize)

	bb.Grow(2048)

	assert.GreaterOrEqual(t, cap(bb.B), largeSize+2048)
}

func TestByteBuffer_Grow_PreservesData(t *testing.T) {
	bb := NewByteBuffer(ApplicationDataDefaultSize)
	testData := []byte("important data that must be preserved")
	bb.B = append(bb.B, testData...)

	bb.Grow(ApplicationDataDefaultSize * 2)

	assert.Equal(t, testData, bb.B)
}

func TestByteBuffer_Grow_ZeroBytes(t *testing.T) {
	bb := NewByteBuffer(ApplicationDataDefaultSize)
	originalCap := cap(bb.B)

	bb.Grow(0)

	assert.Equal(t, originalCap, cap(bb.B))
}

func TestGetApplicationDataBuffer(t *testing.T) {
	bb := GetApplicationDataBuffer()

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B))
	assert.GreaterOrEqual(t, cap(bb.B), ApplicationDataDefaultSize)
}

func TestPutApplicationDataBuffer_NilBuffer(t *testing.T) {
	assert.NotPanics(t, func() {
		PutApplicationDataBuffer(nil)
	})
}

func TestPool_ResetsClearsData(t *testing.T) {
	bb := GetApplicationDataBuffer()
	bb.B = append(bb.B, []byte("sensitive data")...)

	PutApplicationDataBuffer(bb)

	assert.Equal(t, 0, len(bb.B), "PutApplicationDataBuffer should reset the buffer")
}

func TestPool_MultipleGetsAndPuts(t *testing.T) {
	buffers := make([]*ByteBuffer, 10)

	for i := range buffers {
		buffers[i] = GetApplicationDataBuffer()
		require.NotNil(t, buffers[i])
		buffers[i].MustWrite([]byte("data"))
	}

	for _, bb := range buffers {
		PutApplicationDataBuffer(bb)
	}

	for range 10 {
		bb := GetApplicationDataBuffer()
		assert.Equal(t, 0, bb.Len())
		PutApplicationDataBuffer(bb)
	}
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 100
	const numIterations = 1000

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for range numGoroutines {
		go func() {
			defer wg.Done()
			for range numIterations {
				bb := GetApplicationDataBuffer()
				bb.MustWrite([]byte("data"))
				assert.Equal(t, 4, bb.Len())
				PutApplicationDataBuffer(bb)
			}
		}()
	}

	wg.Wait()
}

func TestNewByteBufferPool(t *testing.T) {
	pool := NewByteBufferPool(8192, 65536)

	require.NotNil(t, pool)

	bb := pool.Get()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, cap(bb.B), 8192)

	pool.Put(bb)
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	pool := NewByteBufferPool(1024, 4096)

	bb := pool.Get()
	bb.Grow(10000)

	assert.Greater(t, cap(bb.B), 4096)

	pool.Put(bb)

	bb2 := pool.Get()
	assert.LessOrEqual(t, cap(bb2.B), 4096*2, "should not reuse buffer larger than threshold")
}

func TestByteBufferPool_MaxThreshold_Zero(t *testing.T) {
	pool := NewByteBufferPool(1024, 0)

	bb := pool.Get()
	bb.Grow(1024 * 1024)

	assert.Greater(t, cap(bb.B), 100000)

	pool.Put(bb)

	bb2 := pool.Get()
	assert.NotNil(t, bb2)
}

func BenchmarkByteBuffer_Write(b *testing.B) {
	data := []byte("benchmark data for testing write performance")

	for b.Loop() {
		bb := NewByteBuffer(ApplicationDataDefaultSize)
		_, _ = bb.Write(data)
	}
}

func BenchmarkPool_GetWritePut(b *testing.B) {
	data := []byte("benchmark data")

	for b.Loop() {
		bb := GetApplicationDataBuffer()
		bb.MustWrite(data)
		PutApplicationDataBuffer(bb)
	}
}

// errorWriter always fails, for exercising WriteTo's error path.
type errorWriter struct {
	err error
}

func (ew *errorWriter) Write(p []byte) (n int, err error) {
	return 0, ew.err
}
