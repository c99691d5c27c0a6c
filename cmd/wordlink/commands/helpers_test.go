// ABOUTME: Shared fixtures for command tests
// ABOUTME: Writes small posts, answers and lexicon tables into a temp dir

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testPosts = `wordle_id,tweet_id,tweet_date,tweet_username,tweet_text
200,t1,2022-01-05,alice,"Wordle 200 2/6

🟨⬛⬛⬛⬛
🟩🟩🟩🟩🟩"
200,t2,2022-01-05,bob,"Wordle 200 4/6

⬛⬛⬛⬛⬛
⬛🟨⬛⬛⬛
🟩🟩⬛🟩🟩
🟩🟩🟩🟩🟩"
201,t3,2022-01-06,carol,"no grid, just vibes"
201,t4,2022-01-06,dave,"🟩🟩🟩🟩🟩"
`

const testAnswers = "date\twordle_id\tanswer\n" +
	"2022-01-05\t200\tCIGAR\n" +
	"2022-01-06\t201\tQUXXY\n"

func testLexicon() string {
	row := func(cue, r1, r2, r3 string) string {
		f := make([]string, 18)
		f[11], f[15], f[16], f[17] = cue, r1, r2, r3
		return strings.Join(f, ",") + "\n"
	}
	return row("cue", "R1", "R2", "R3") +
		row("tobacco", "cigar", "smoke", "") +
		row("cuba", "cigar", "", "") +
		row("tobacco", "cigar", "", "")
}

type fixtures struct {
	posts   string
	answers string
	lexicon string
	dir     string
}

func writeFixtures(t *testing.T) fixtures {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
		return path
	}
	return fixtures{
		posts:   write("posts.csv", testPosts),
		answers: write("answers.tsv", testAnswers),
		lexicon: write("lexicon.csv", testLexicon()),
		dir:     dir,
	}
}

// execute runs the root command with args and returns combined output
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return output.String(), err
}
