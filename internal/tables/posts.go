// ABOUTME: Posts table reader
// ABOUTME: puzzle_id, post_id, post_date, username, text; comma-delimited
package tables

import (
	"io"
	"strings"

	"github.com/harper/wordlink/internal/models"
)

// PostsColumns is the fixed width of the posts table
const PostsColumns = 5

// ReadPosts streams every post to fn; the puzzle id is trimmed like the answer key's
func ReadPosts(r io.Reader, opts Options, fn func(models.RawRecord) error) error {
	layout := Layout{Name: "posts", Comma: ',', Columns: PostsColumns, HasHeader: opts.HasHeader}
	return each(r, layout, opts, func(_ int, f []string) error {
		return fn(models.RawRecord{
			PuzzleID: strings.TrimSpace(f[0]),
			PostID:   f[1],
			PostDate: f[2],
			Username: f[3],
			Text:     f[4],
		})
	})
}
