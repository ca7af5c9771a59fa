package envfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnviron(t *testing.T) {
	environ := []string{"HOME=/home/user", "EMPTY=", "CHAIN=a=b", "NOEQUALS"}

	vars := ParseEnviron(environ)

	assert.Equal(t, Vars{
		"HOME":  "/home/user",
		"EMPTY": "",
		"CHAIN": "a=b",
	}, vars)
}

// Unlike file parsing, environ values are taken verbatim.
func TestParseEnviron_NoQuoteStripping(t *testing.T) {
	vars := ParseEnviron([]string{`QUOTED="kept"`})

	assert.Equal(t, `"kept"`, vars["QUOTED"])
}

func TestMerge_FileWinsOnConflict(t *testing.T) {
	environ := []string{"PATH=/usr/bin", "PORT=1"}

	merged := Merge(environ, Vars{"PORT": "8080"})

	assert.Equal(t, []string{"PATH=/usr/bin", "PORT=8080"}, merged)
}

func TestMerge_AppendsOverlayInSortedOrder(t *testing.T) {
	environ := []string{"HOME=/root"}

	merged := Merge(environ, Vars{"ZED": "1", "ABLE": "2", "MID": "3"})

	assert.Equal(t, []string{"HOME=/root", "ABLE=2", "MID=3", "ZED=1"}, merged)
}

func TestMerge_EmptyOverlayKeepsEnviron(t *testing.T) {
	environ := []string{"A=1", "B=2"}

	assert.Equal(t, environ, Merge(environ, Vars{}))
}

func TestMerge_MalformedEnvironEntryPassesThrough(t *testing.T) {
	merged := Merge([]string{"JUSTANAME"}, Vars{"A": "1"})

	assert.Equal(t, []string{"JUSTANAME", "A=1"}, merged)
}
