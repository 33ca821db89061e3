package utils

import "math/rand"

func GenerateRandomToken(length int) string {
    const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

    token := make([]byte, length)
    for i := range token {
        token[i] = charset[rand.Intn(len(charset))]
    }
    return string(token)
}
