package utils

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/marsa-control/vessel-clearance/backend/internal/domain"
	"github.com/marsa-control/vessel-clearance/backend/internal/schedule"
)

var commonFirstNames = []string{
	"نايف", "عبيد", "عوض", "سند", "محمد", "أحمد", "خالد", "سعيد",
	"فهد", "سلطان", "ماجد", "بندر", "طلال", "نواف", "راشد", "حمد",
}
var commonLastNames = []string{
	"الحربي", "العتيبي", "الزهراني", "الغامدي", "القحطاني", "الشمري",
	"المطيري", "الدوسري", "العنزي", "البلوي", "الجهني", "الرشيدي",
}

func GenerateRandomArabicName() string {
	return commonFirstNames[rand.Intn(len(commonFirstNames))] + " " + commonLastNames[rand.Intn(len(commonLastNames))]
}

var asciiLetters = "abcdefghijklmnopqrstuvwxyz"
var digits = "0123456789"

func GenerateRandomUsername() string {
	username := make([]byte, 0, 10)
	for i := 0; i < rand.Intn(4)+4; i++ {
		username = append(username, asciiLetters[rand.Intn(len(asciiLetters))])
	}
	for i := 0; i < rand.Intn(3)+1; i++ {
		username = append(username, digits[rand.Intn(len(digits))])
	}
	return string(username)
}

var roles = []domain.Role{
	domain.RoleSupervisor,
	domain.RoleOperator,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	username := GenerateRandomUsername()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     GenerateRandomArabicName(),
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

var vesselNames = []string{
	"النجم الساطع", "درة البحر", "لؤلؤة الخليج", "ريح الشمال",
	"فجر السواحل", "نسيم الجنوب", "تاج البحار", "سفينة الأمل",
}
var ports = []string{
	"جدة", "ينبع", "ضبا", "جازان", "السويس", "بورتسودان", "سواكن", "العقبة",
}
var flags = []string{
	"السعودية", "مصر", "السودان", "الأردن", "بنما", "ليبيريا",
}
var agents = []string{
	"وكالة البحر الأحمر", "وكالة الساحل للملاحة", "الوكالة الوطنية البحرية", "وكالة المرفأ",
}

// GenerateRandomVessel builds a plausible registration. Roughly half of the
// generated vessels come out already arrived so both board tabs have data.
func GenerateRandomVessel() *domain.Vessel {
	vessel := &domain.Vessel{
		ID:          uuid.NewString(),
		VesselName:  vesselNames[rand.Intn(len(vesselNames))] + " " + digitsSuffix(),
		Flag:        flags[rand.Intn(len(flags))],
		ComingFrom:  ports[rand.Intn(len(ports))],
		HeadingTo:   ports[rand.Intn(len(ports))],
		CrewCount:   int32(rand.Intn(40) + 5),
		Appointment: schedule.Today().AddDays(rand.Intn(30) - 15),
		Agent:       agents[rand.Intn(len(agents))],
	}

	if rand.Intn(2) == 0 {
		passengers := int32(rand.Intn(300))
		pilgrims := int32(rand.Intn(int(passengers) + 1))
		vessel.PassengerCount = &passengers
		vessel.PilgrimCount = &pilgrims
	}

	if rand.Intn(2) == 0 {
		enteredBy := GenerateRandomArabicName()
		arrival := vessel.Appointment.AddDays(rand.Intn(3))
		vessel.EnteredBy = &enteredBy
		vessel.ArrivalDate = &arrival
	}

	return vessel
}

func digitsSuffix() string {
	return string(digits[rand.Intn(9)+1]) + string(digits[rand.Intn(len(digits))])
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}
