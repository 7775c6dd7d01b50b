package core

import (
	"bytes"
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// Fingerprint hashes arbitrary content to 64 bits using BLAKE2b.
// Identical content always produces identical fingerprints.
func Fingerprint(content []byte) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(content)
	return binary.LittleEndian.Uint64(h.Sum(nil))
}

// Hash fingerprints the encoded form of the post, covering every field
// including comments and attachment contents. Posts that are Equal after
// being brought to stored form hash equally.
func (p *Post) Hash() uint64 {
	buf := make([]byte, PostMUS.Size(*p))
	PostMUS.Marshal(*p, buf)
	return Fingerprint(buf)
}


// Equal reports whether two attachments have the same type and content.
func (a Attachment) Equal(b Attachment) bool {
	return a.Type == b.Type && bytes.Equal(a.Data, b.Data)
}

func attachmentsEqual(a, b []Attachment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Equal compares every field of two comments, attachments element by element.
// A nil and an empty attachment list are equal.
func (c *Comment) Equal(o *Comment) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Id == o.Id &&
		c.FromID == o.FromID &&
		c.Date.Equal(o.Date) &&
		c.Text == o.Text &&
		c.ReplyToUser == o.ReplyToUser &&
		c.ReplyToComment == o.ReplyToComment &&
		attachmentsEqual(c.Attachments, o.Attachments)
}

// Equal compares every field of two posts, including comments and
// attachments element by element.
func (p *Post) Equal(o *Post) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.Id != o.Id ||
		p.ToID != o.ToID ||
		p.FromID != o.FromID ||
		!p.Date.Equal(o.Date) ||
		p.Text != o.Text ||
		p.PostType != o.PostType ||
		p.CanEdit != o.CanEdit ||
		p.CanDelete != o.CanDelete ||
		p.CanPin != o.CanPin ||
		p.IsPinned != o.IsPinned ||
		p.IsFavorite != o.IsFavorite ||
		p.Likes != o.Likes ||
		len(p.Comments) != len(o.Comments) {
		return false
	}
	for i := range p.Comments {
		if !p.Comments[i].Equal(&o.Comments[i]) {
			return false
		}
	}
	return attachmentsEqual(p.Attachments, o.Attachments)
}
