package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// PasswordServiceTestSuite defines the test suite for PasswordService
type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

// SetupTest runs before each test
func (s *PasswordServiceTestSuite) SetupTest() {
	// MinCost keeps the hashing tests fast
	s.service = NewPasswordService(bcrypt.MinCost)
}

// TestPasswordServiceSuite runs the test suite
func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

// Test ValidatePassword
func (s *PasswordServiceTestSuite) TestValidatePassword_ValidPassword() {
	err := s.service.ValidatePassword("SecurePass123!@#")
	s.NoError(err)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_TooShort() {
	err := s.service.ValidatePassword("Short1!")
	s.Error(err)
	s.Contains(err.Error(), "password must be at least 12 characters")
}

func (s *PasswordServiceTestSuite) TestValidatePassword_TooLong() {
	err := s.service.ValidatePassword(strings.Repeat("Aa1!", 19)) // 76 characters
	s.Error(err)
	s.Contains(err.Error(), "password must not exceed 72 characters")
}

func (s *PasswordServiceTestSuite) TestValidatePassword_MissingUppercase() {
	err := s.service.ValidatePassword("securepass123!@#")
	s.Error(err)
	s.Contains(err.Error(), "password must contain at least one uppercase letter")
}

func (s *PasswordServiceTestSuite) TestValidatePassword_MissingLowercase() {
	err := s.service.ValidatePassword("SECUREPASS123!@#")
	s.Error(err)
	s.Contains(err.Error(), "password must contain at least one lowercase letter")
}

func (s *PasswordServiceTestSuite) TestValidatePassword_MissingNumber() {
	err := s.service.ValidatePassword("SecurePass!@#")
	s.Error(err)
	s.Contains(err.Error(), "password must contain at least one number")
}

func (s *PasswordServiceTestSuite) TestValidatePassword_MissingSpecialChar() {
	err := s.service.ValidatePassword("SecurePass123")
	s.Error(err)
	s.Contains(err.Error(), "password must contain at least one special character")
}

func (s *PasswordServiceTestSuite) TestValidatePassword_Empty() {
	err := s.service.ValidatePassword("")
	s.Error(err)
	s.Contains(err.Error(), "password cannot be empty")
}

func (s *PasswordServiceTestSuite) TestValidatePassword_WithSpaces() {
	err := s.service.ValidatePassword("Secure Pass123!")
	s.NoError(err)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_MinimumValid() {
	err := s.service.ValidatePassword("Aa1!Aa1!Aa1!")
	s.NoError(err)
}

// Test HashPassword
func (s *PasswordServiceTestSuite) TestHashPassword_ValidPassword() {
	hash, err := s.service.HashPassword("SecurePass123!@#")
	s.NoError(err)
	s.NotEmpty(hash)
	s.NotEqual("SecurePass123!@#", hash)
	s.True(strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$"))
}

func (s *PasswordServiceTestSuite) TestHashPassword_InvalidPassword() {
	hash, err := s.service.HashPassword("short")
	s.Error(err)
	s.Empty(hash)
}

func (s *PasswordServiceTestSuite) TestHashPassword_EmptyPassword() {
	hash, err := s.service.HashPassword("")
	s.Error(err)
	s.Empty(hash)
}

func (s *PasswordServiceTestSuite) TestHashPassword_VeryLongPassword() {
	password := strings.Repeat("Aa1!", 17) // 68 characters (under 72 byte limit)
	hash, err := s.service.HashPassword(password)
	s.NoError(err)
	s.NotEmpty(hash)
	s.NotEqual(password, hash)
}

// Test ComparePassword
func (s *PasswordServiceTestSuite) TestComparePassword_CorrectPassword() {
	password := "SecurePass123!@#"
	hash, err := s.service.HashPassword(password)
	s.Require().NoError(err)

	result := s.service.ComparePassword(password, hash)
	s.True(result)
}

func (s *PasswordServiceTestSuite) TestComparePassword_IncorrectPassword() {
	password := "SecurePass123!@#"
	hash, err := s.service.HashPassword(password)
	s.Require().NoError(err)

	result := s.service.ComparePassword("WrongPass123!@#", hash)
	s.False(result)
}

func (s *PasswordServiceTestSuite) TestComparePassword_EmptyPassword() {
	password := "SecurePass123!@#"
	hash, err := s.service.HashPassword(password)
	s.Require().NoError(err)

	result := s.service.ComparePassword("", hash)
	s.False(result)
}

func (s *PasswordServiceTestSuite) TestComparePassword_InvalidHash() {
	result := s.service.ComparePassword("SecurePass123!@#", "invalid-hash")
	s.False(result)
}

func (s *PasswordServiceTestSuite) TestComparePassword_EmptyHash() {
	result := s.service.ComparePassword("SecurePass123!@#", "")
	s.False(result)
}

func (s *PasswordServiceTestSuite) TestComparePassword_CaseSensitive() {
	password := "SecurePass123!@#"
	hash, err := s.service.HashPassword(password)
	s.Require().NoError(err)

	result := s.service.ComparePassword("securepass123!@#", hash)
	s.False(result)
}

// Test hash uniqueness
func (s *PasswordServiceTestSuite) TestHashUniqueness() {
	password := "SecurePass123!@#"

	hash1, err1 := s.service.HashPassword(password)
	s.NoError(err1)

	hash2, err2 := s.service.HashPassword(password)
	s.NoError(err2)

	// Hashes should be different due to salting
	s.NotEqual(hash1, hash2)

	// But both should validate against the original password
	s.True(s.service.ComparePassword(password, hash1))
	s.True(s.service.ComparePassword(password, hash2))
}

// Test PasswordStrength
func (s *PasswordServiceTestSuite) TestPasswordStrength_Empty() {
	score := s.service.PasswordStrength("")
	s.Equal(0, score)
}

func (s *PasswordServiceTestSuite) TestPasswordStrength_Weak() {
	score := s.service.PasswordStrength("password")
	s.GreaterOrEqual(score, 0)
	s.Less(score, 80)
}

func (s *PasswordServiceTestSuite) TestPasswordStrength_MeetsRequirements() {
	score := s.service.PasswordStrength("SecurePass123!")
	s.GreaterOrEqual(score, 80)
	s.LessOrEqual(score, 100)
}

func (s *PasswordServiceTestSuite) TestPasswordStrength_VeryStrong() {
	score := s.service.PasswordStrength("VerySecure$Pass123!WithManyChars")
	s.GreaterOrEqual(score, 85)
	s.LessOrEqual(score, 100)
}

// Benchmarks
func BenchmarkPasswordService_HashPassword(b *testing.B) {
	service := NewPasswordService(bcrypt.DefaultCost)
	password := "SecurePass123!@#"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := service.HashPassword(password)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPasswordService_ComparePassword(b *testing.B) {
	service := NewPasswordService(bcrypt.DefaultCost)
	password := "SecurePass123!@#"
	hash, err := service.HashPassword(password)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = service.ComparePassword(password, hash)
	}
}
