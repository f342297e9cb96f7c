package middleware

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"

	"floorspace/internal/core/apperror"
)

// Body middleware transparently decodes gzip request bodies
// (Content-Encoding: gzip) and caps the decoded size at limit bytes.
// Editor clients compress model snapshots before posting them.
func Body(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}

		if strings.EqualFold(strings.TrimSpace(c.GetHeader("Content-Encoding")), "gzip") {
			zr, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				_ = c.Error(apperror.NewValidation("invalid gzip request body").WithCause(err))
				c.Abort()
				return
			}

			c.Request.Body = &gzipBody{Reader: zr, orig: c.Request.Body}
			c.Request.Header.Del("Content-Encoding")
			c.Request.Header.Del("Content-Length")
			c.Request.ContentLength = -1
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

type gzipBody struct {
	*gzip.Reader
	orig io.ReadCloser
}

func (b *gzipBody) Close() error {
	_ = b.Reader.Close()
	return b.orig.Close()
}
