package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	doctorRepo "medhub/database/repository/doctor"
	patientRepo "medhub/database/repository/patient"
	"medhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthDoctorMiddleware guards doctor-only routes and sets "doctorID".
func JWTAuthDoctorMiddleware(repo doctorRepo.DoctorRepository) gin.HandlerFunc {
	return roleAuthMiddleware("doctor", "doctorID", func(id string) (string, error) {
		doctor, err := repo.GetByID(id)
		if err != nil || doctor == nil {
			return "", err
		}
		return doctor.TokenHash, nil
	})
}

// JWTAuthPatientMiddleware guards patient-only routes and sets "patientID".
func JWTAuthPatientMiddleware(repo patientRepo.PatientRepository) gin.HandlerFunc {
	return roleAuthMiddleware("patient", "patientID", func(id string) (string, error) {
		patient, err := repo.GetByID(id)
		if err != nil || patient == nil {
			return "", err
		}
		return patient.TokenHash, nil
	})
}

// roleAuthMiddleware validates the bearer token for one role: signature and
// expiry first, then the stored hash (Redis, falling back to the profile).
func roleAuthMiddleware(role, contextKey string, storedHash func(id string) (string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		subjectID, tokenRole, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subjectID == "" || tokenRole != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + role + ":" + subjectID

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := true
		if authCache == nil {
			// Treat a missing cache client as a cache miss.
			log.Printf("WARNING: Auth cache client not available. Falling back to DB lookup.")
			cacheEnabled = false
		}

		if cacheEnabled {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash == computedHash {
					_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
					c.Set(contextKey, subjectID)
					c.Next()
					return
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token mismatch",
					"code":  0,
				})
				return
			} else if err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
			}
		}

		// Cache miss: compare against the hash persisted on the profile.
		persistedHash, err := storedHash(subjectID)
		if err != nil || persistedHash == "" || persistedHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token mismatch",
				"code":  0,
			})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		}

		c.Set(contextKey, subjectID)
		c.Next()
	}
}
