package chord

import (
	"testing"

	"github.com/jsphweid/chordgen/model"
	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	assert := assert.New(t)
	assert.Len(catalog, 15)
	assert.Equal("MAJ", catalog[0].Name)

	seen := map[string]bool{}
	for _, c := range catalog {
		assert.False(seen[c.Name], "duplicate chord %s", c.Name)
		seen[c.Name] = true
		assert.GreaterOrEqual(c.Len(), 2)
		assert.LessOrEqual(c.Len(), 6)
		assert.Equal(0, c.Offsets[0])
	}
}

func TestCatalogReturnsFreshStorage(t *testing.T) {
	Catalog()[0].Offsets[0] = 99
	assert.Equal(t, 0, Catalog()[0].Offsets[0])
}

func TestFind(t *testing.T) {
	assert := assert.New(t)
	c, ok := Find("MINMAJ7")
	assert.True(ok)
	assert.Equal([]int{0, 3, 7, 11}, c.Offsets)

	_, ok = Find("SUS4")
	assert.False(ok)
}

func TestCreateChordKeyDoesNotMutate(t *testing.T) {
	offsets := []int{12, 4, 7}
	assert := assert.New(t)
	assert.Equal("4-7-12", CreateChordKey(offsets))
	assert.Equal([]int{12, 4, 7}, offsets)
}

func TestInversions(t *testing.T) {
	maj, _ := Find("MAJ")
	invs := Inversions(maj)

	assert := assert.New(t)
	assert.Equal([]model.ChordDefinition{
		{Name: "MAJ_INV1", Offsets: []int{12, 4, 7}},
		{Name: "MAJ_INV2", Offsets: []int{12, 16, 7}},
	}, invs)
	assert.Equal([]int{0, 4, 7}, maj.Offsets)
}

func TestInversionCount(t *testing.T) {
	for _, c := range Catalog() {
		assert.Len(t, Inversions(c), c.Len()-1, c.Name)
	}
}

func TestInversionsDoNotAlias(t *testing.T) {
	dom7, _ := Find("DOM7")
	invs := Inversions(dom7)
	invs[0].Offsets[1] = 99

	assert := assert.New(t)
	assert.Equal([]int{12, 16, 7, 10}, invs[1].Offsets)
	assert.Equal([]int{0, 4, 7, 10}, dom7.Offsets)
}

func TestVoicingsStartWithRoot(t *testing.T) {
	pow, _ := Find("POW")
	v := Voicings(pow)
	assert := assert.New(t)
	assert.Len(v, 2)
	assert.Equal("POW", v[0].Name)
	assert.Equal("POW_INV1", v[1].Name)
	assert.Equal([]int{12, 7}, v[1].Offsets)
}
