// Package middleware provides authentication, logging, rate limiting and
// tracing middleware for the application.
package middleware

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// TokenDenylistPrefix is the Redis key prefix for revoked token IDs.
const TokenDenylistPrefix = "auth:denied:"

// AuthRequired returns a middleware that enforces authentication for
// protected routes. Tokens are HMAC-signed JWTs carrying the user ID in the
// "sub" claim and a unique "jti"; when a Redis client is available the jti
// is checked against the logout denylist.
func AuthRequired(secret string, rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token claims",
			})
		}

		// User ID travels in the "sub" claim (RFC 7519 subject).
		subStr, ok := claims["sub"].(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token structure - missing subject",
			})
		}

		userIDVal, err := strconv.ParseUint(subStr, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid user ID in token",
			})
		}

		if jti, ok := claims["jti"].(string); ok {
			if rdb != nil {
				if revoked, err := isTokenRevoked(c.Context(), rdb, jti); err == nil && revoked {
					return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
						"error": "Token has been revoked",
					})
				}
			}
			c.Locals("tokenID", jti)
		}

		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			c.Locals("tokenExpiresAt", exp.Time)
		}

		c.Locals("userID", uint(userIDVal))
		return c.Next()
	}
}

func isTokenRevoked(ctx context.Context, rdb *redis.Client, jti string) (bool, error) {
	n, err := rdb.Exists(ctx, TokenDenylistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
