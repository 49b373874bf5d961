package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"idish-backend/config"
	"idish-backend/rules"
	"idish-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store holds the object store; wired up in main
var Store *storage.Store

const maxImageSize = 5 << 20 // 5MB

var allowedBuckets = map[string]bool{
	"chefs":    true,
	"dishes":   true,
	"hostings": true,
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// linkableTables maps the client-facing table name to the real table
// whose image_url column may be updated after an upload.
var linkableTables = map[string]string{
	"chefs":    "chef_profiles",
	"dishes":   "dishes",
	"hostings": "hosting",
}

// UploadImage accepts a multipart image, stores it in the requested
// bucket and returns its public URL. If record_id and table are supplied
// the URL is linked to that row best-effort: a failed link is logged but
// the upload still succeeds, since the blob is already durably stored.
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		failValidation(c, "No image file uploaded.")
		return
	}

	bucket := c.PostForm("bucket")
	if !allowedBuckets[bucket] {
		failValidation(c, "Invalid or missing bucket name. Allowed buckets are: chefs, dishes, hostings")
		return
	}
	if file.Size > maxImageSize {
		failValidation(c, "Image too large; limit is 5MB")
		return
	}
	if !allowedImageTypes[file.Header.Get("Content-Type")] {
		failValidation(c, "Invalid file type. Only jpg, png, and jpeg are allowed.")
		return
	}

	ext := filepath.Ext(file.Filename)
	name := fmt.Sprintf("%s-%d%s", uuid.New().String(), time.Now().UnixMilli(), ext)

	// stage the upload through a temp file, removed on every exit path
	tmpPath := filepath.Join(os.TempDir(), name)
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		fail(c, rules.Upstream("Failed to read uploaded image"))
		return
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			logrus.WithError(err).Warn("failed to remove temp upload file")
		}
	}()

	src, err := os.Open(tmpPath)
	if err != nil {
		fail(c, rules.Upstream("Failed to read uploaded image"))
		return
	}
	defer src.Close()

	publicURL, err := Store.Put(bucket, name, src)
	if err != nil {
		fail(c, rules.Upstream("Error uploading image to storage: " + err.Error()))
		return
	}

	recordID := c.PostForm("record_id")
	table := c.PostForm("table")
	if recordID != "" && table != "" {
		target, ok := linkableTables[table]
		if !ok {
			logrus.WithField("table", table).Warn("image link skipped: table not linkable")
		} else if err := config.DB.Table(target).
			Where("id = ?", recordID).
			Update("image_url", publicURL).Error; err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"table":     target,
				"record_id": recordID,
			}).Error("failed to link image to record")
		}
	}

	c.JSON(http.StatusOK, gin.H{"image_url": publicURL})
}
