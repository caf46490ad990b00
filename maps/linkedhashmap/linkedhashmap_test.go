package linkedhashmap

import (
	"crypto/rand"
	"encoding/json"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPutAndGet(t *testing.T) {
	m := New[int, string]()
	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Size())

	m.Put(5, "e")
	m.Put(6, "f")
	m.Put(7, "g")
	m.Put(3, "c")
	m.Put(4, "d")
	m.Put(1, "x")
	m.Put(2, "b")

	assert.False(t, m.Empty())
	assert.Equal(t, 7, m.Size())

	for _, tc := range []struct {
		key      int
		expected string
		found    bool
	}{
		{1, "x", true},
		{2, "b", true},
		{3, "c", true},
		{4, "d", true},
		{5, "e", true},
		{6, "f", true},
		{7, "g", true},
		{8, "", false},
	} {
		value, found := m.Get(tc.key)
		assert.Equal(t, tc.expected, value)
		assert.Equal(t, tc.found, found)
	}
}

func TestMapPutFirstWriteWins(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("a", 2)

	value, found := m.Get("a")
	assert.True(t, found)
	assert.Equal(t, 1, value)
	assert.Equal(t, 1, m.Size())
}

func TestMapPutDuplicateDoesNotGrow(t *testing.T) {
	m := New[int, string]()
	m.Put(1, "a")
	require.Equal(t, uint64(2), m.tableSize)

	// 1*2 >= 2, so an insert of a fresh key would double the table, but a
	// duplicate put is a pure no-op.
	m.Put(1, "again")
	assert.Equal(t, uint64(2), m.tableSize)
	assert.Equal(t, 1, m.Size())
}

func TestMapGrowth(t *testing.T) {
	m := New[int, string]()
	require.Equal(t, uint64(2), m.tableSize)

	m.Put(1, "a")
	assert.Equal(t, uint64(2), m.tableSize)

	m.Put(2, "b")
	assert.Equal(t, uint64(4), m.tableSize)

	m.Put(3, "c")
	assert.Equal(t, uint64(8), m.tableSize)

	assert.Equal(t, 3, m.Size())
	assert.Equal(t, []int{3, 2, 1}, m.Keys())
	assert.Equal(t, []string{"c", "b", "a"}, m.Values())
}

func TestMapGrowthMonotone(t *testing.T) {
	m := New[int, int]()
	prev := m.tableSize
	for i := 0; i < 1000; i++ {
		m.Put(i, i)
		require.GreaterOrEqual(t, m.tableSize, prev)
		require.Equal(t, uint64(0), m.tableSize&(m.tableSize-1), "table size must stay a power of two")
		prev = m.tableSize
	}
	assert.Equal(t, 1000, m.Size())

	// removals never shrink the table
	for i := 0; i < 1000; i++ {
		m.Remove(i)
	}
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, prev, m.tableSize)
}

func TestMapIterationOrder(t *testing.T) {
	m := New[string, int]()
	m.Put("first", 1)
	m.Put("second", 2)
	m.Put("third", 3)

	// newest insert first
	assert.Equal(t, []string{"third", "second", "first"}, m.Keys())

	// lookups do not disturb the order
	_, _ = m.Get("first")
	_ = m.Contains("second")
	assert.Equal(t, []string{"third", "second", "first"}, m.Keys())

	// removing one element keeps the relative order of the others
	m.Remove("second")
	assert.Equal(t, []string{"third", "first"}, m.Keys())
}

func TestMapRef(t *testing.T) {
	m := New[string, int]()

	p := m.Ref("counter")
	require.NotNil(t, p)
	assert.Equal(t, 0, *p, "fresh key starts at the zero value")
	assert.Equal(t, 1, m.Size())

	*p = 41
	value, found := m.Get("counter")
	assert.True(t, found)
	assert.Equal(t, 41, value)

	q := m.Ref("counter")
	*q = *q + 1
	value, _ = m.Get("counter")
	assert.Equal(t, 42, value)
}

func TestMapRefStableAcrossGrowth(t *testing.T) {
	m := New[int, string]()
	p := m.Ref(0)
	*p = "kept"

	for i := 1; i <= 64; i++ { // forces several rehashes
		m.Put(i, "filler")
	}

	assert.Equal(t, "kept", *p)
	value, _ := m.Get(0)
	assert.Equal(t, "kept", value)
}

func TestMapAt(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)

	value, err := m.At("a")
	require.NoError(t, err)
	assert.Equal(t, 1, value)

	_, err = m.At("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, 1, m.Size(), "failed At must have no side effects")
}

func TestMapRemove(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)

	m.Remove("a")
	assert.Equal(t, 1, m.Size())
	assert.Nil(t, m.Find("a"))
	_, found := m.Get("a")
	assert.False(t, found)

	m.Remove("a") // absent key is a no-op
	assert.Equal(t, 1, m.Size())

	m.Remove("b")
	assert.True(t, m.Empty())
}

func TestMapFind(t *testing.T) {
	m := New[string, int]()
	assert.Nil(t, m.Find("a"))

	m.Put("a", 1)
	m.Put("b", 2)

	e := m.Find("a")
	require.NotNil(t, e)
	assert.Equal(t, "a", e.Value.Key)
	assert.Equal(t, 1, e.Value.Value)

	// the handle is a position in iteration order: "b" is newer, so it
	// precedes "a"
	assert.Nil(t, e.Next())
	prev := e.Prev()
	require.NotNil(t, prev)
	assert.Equal(t, "b", prev.Value.Key)
}

func TestMapFindHandleStableAcrossGrowth(t *testing.T) {
	m := New[int, string]()
	m.Put(100, "target")
	e := m.Find(100)
	require.NotNil(t, e)

	for i := 0; i < 128; i++ {
		m.Put(i, "filler")
	}

	assert.Equal(t, "target", e.Value.Value)
	assert.Same(t, e, m.Find(100), "growth must not reallocate records")
}

func TestMapFrontBack(t *testing.T) {
	m := New[string, int]()
	assert.Nil(t, m.Front())
	assert.Nil(t, m.Back())

	m.Put("oldest", 1)
	m.Put("newest", 2)

	assert.Equal(t, "newest", m.Front().Value.Key)
	assert.Equal(t, "oldest", m.Back().Value.Key)
}

func TestMapNewFromPairs(t *testing.T) {
	m := NewFromPairs(
		Pair[string, int]{"a", 1},
		Pair[string, int]{"b", 2},
		Pair[string, int]{"a", 3}, // duplicate, ignored
	)

	assert.Equal(t, 2, m.Size())
	value, _ := m.Get("a")
	assert.Equal(t, 1, value, "first occurrence wins")
	assert.Equal(t, []string{"b", "a"}, m.Keys())
}

func TestMapNewFromSeq(t *testing.T) {
	src := NewFromPairs(
		Pair[string, int]{"a", 1},
		Pair[string, int]{"b", 2},
	)
	m := NewFromSeq(src.Pairs())

	// replaying a newest-first sequence through prepending inserts reverses it
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, []string{"a", "b"}, m.Keys())
}

func TestMapCopy(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	cp := m.Copy()
	assert.Equal(t, m.Size(), cp.Size())
	assert.Equal(t, m.Keys(), cp.Keys())
	assert.Equal(t, m.Values(), cp.Values())

	// deep copy: mutations are independent
	cp.Remove("b")
	*cp.Ref("c") = 30
	assert.True(t, m.Contains("b"))
	value, _ := m.Get("c")
	assert.Equal(t, 3, value)
}

func TestMapClear(t *testing.T) {
	m := New[int, string]()
	for i := 0; i < 100; i++ {
		m.Put(i, "v")
	}
	require.Greater(t, m.tableSize, uint64(2))

	m.Clear()
	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, uint64(2), m.tableSize)
	assert.Nil(t, m.Front())

	// behaves as a freshly constructed map
	m.Put(1, "a")
	assert.Equal(t, uint64(2), m.tableSize)
	m.Put(2, "b")
	assert.Equal(t, uint64(4), m.tableSize)
	assert.Equal(t, []int{2, 1}, m.Keys())
}

func TestMapContains(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)

	assert.True(t, m.Contains())
	assert.True(t, m.Contains("a"))
	assert.True(t, m.Contains("a", "b"))
	assert.False(t, m.Contains("a", "z"))
}

func TestMapCustomHasher(t *testing.T) {
	// a constant hasher forces every key into one chain; the map must
	// still behave correctly, only slower
	m := NewWith[int, int](func(int) uint64 { return 0 })
	for i := 0; i < 50; i++ {
		m.Put(i, i * i)
	}
	assert.Equal(t, 50, m.Size())
	for i := 0; i < 50; i++ {
		value, found := m.Get(i)
		require.True(t, found)
		require.Equal(t, i*i, value)
	}
	m.Remove(25)
	assert.False(t, m.Contains(25))
	assert.Equal(t, 49, m.Size())

	assert.NotNil(t, m.Hasher())
}

func TestMapIterator(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	it := m.Iterator()
	keys := []string{}
	values := []int{}
	for it.Next() {
		keys = append(keys, it.Key())
		values = append(values, it.Value())
	}
	assert.Equal(t, []string{"c", "b", "a"}, keys)
	assert.Equal(t, []int{3, 2, 1}, values)

	it.Begin()
	assert.True(t, it.Next())
	assert.Equal(t, "c", it.Key())

	assert.True(t, it.First())
	assert.Equal(t, "c", it.Key())

	empty := New[string, int]()
	assert.False(t, empty.Iterator().Next())
	assert.False(t, empty.Iterator().First())
}

func TestMapPairs(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)

	keys := []string{}
	for k, v := range m.Pairs() {
		keys = append(keys, k)
		assert.True(t, m.Contains(k))
		got, _ := m.Get(k)
		assert.Equal(t, got, v)
	}
	assert.Equal(t, []string{"b", "a"}, keys)

	// restartable, and early break is allowed
	for k := range m.Pairs() {
		assert.Equal(t, "b", k)
		break
	}
}

func TestMapEnumerable(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	sum := 0
	m.Each(func(key string, value int) { sum += value })
	assert.Equal(t, 6, sum)

	assert.True(t, m.Any(func(key string, value int) bool { return value == 2 }))
	assert.False(t, m.Any(func(key string, value int) bool { return value > 3 }))

	assert.True(t, m.All(func(key string, value int) bool { return value > 0 }))
	assert.False(t, m.All(func(key string, value int) bool { return value > 1 }))

	key, value := m.FindMatch(func(key string, value int) bool { return value%2 == 1 })
	assert.Equal(t, "c", key, "enumeration runs newest first")
	assert.Equal(t, 3, value)

	key, value = m.FindMatch(func(key string, value int) bool { return false })
	assert.Equal(t, "", key)
	assert.Equal(t, 0, value)
}

func TestMapString(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	s := m.String()
	assert.Contains(t, s, "LinkedHashMap")
	assert.Contains(t, s, "a:1")
}

func TestMapSerialization(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	data, err := m.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"c":3,"b":2,"a":1}`, string(data))

	restored := New[string, int]()
	require.NoError(t, restored.FromJSON(data))
	assert.Equal(t, m.Keys(), restored.Keys())
	assert.Equal(t, m.Values(), restored.Values())
}

func TestMapSerializationStdlibInterop(t *testing.T) {
	m := New[string, int]()
	m.Put("x", 10)
	m.Put("y", 20)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"y":20,"x":10}`, string(data))

	var restored Map[string, int]
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, []string{"y", "x"}, restored.Keys())
}

func getRand(tb testing.TB) int64 {
	out, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		tb.Fatal(err)
	}
	return out.Int64()
}

func BenchmarkMap_Rand(b *testing.B) {
	m := New[int64, int64]()

	trace := make([]int64, b.N*2)
	for i := 0; i < b.N*2; i++ {
		trace[i] = getRand(b) % 32768
	}

	b.ResetTimer()

	var hit, miss int
	for i := 0; i < 2*b.N; i++ {
		if i%2 == 0 {
			m.Put(trace[i], trace[i])
		} else {
			if _, ok := m.Get(trace[i]); ok {
				hit++
			} else {
				miss++
			}
		}
	}
	b.Logf("hit: %d miss: %d ratio: %f", hit, miss, float64(hit)/float64(hit+miss))
}
