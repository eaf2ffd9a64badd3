// Package catalog holds the built-in exercise reference table and the
// per-session picker overlays layered on top of it.
package catalog

import (
	"alcyxob/workout-tracker/internal/domain"
	"strings"
)

// Categories in display order.
var categories = []string{"Chest", "Legs", "Back", "Shoulders", "Arms", "Core", "Cardio"}

var builtins = []domain.ExerciseInfo{
	{
		Name:           "Bench Press",
		Category:       "Chest",
		Equipment:      "Barbell",
		Description:    "Lie on a flat bench with your feet flat on the floor. Grip the barbell slightly wider than shoulder-width. Lower the bar to your chest, then press it back up to the starting position.",
		PrimaryMuscles: []string{"Chest", "Triceps", "Shoulders"},
		ImageURL:       "https://images.pexels.com/photos/136404/pexels-photo-136404.jpeg",
	},
	{
		Name:           "Squats",
		Category:       "Legs",
		Equipment:      "Barbell",
		Description:    "Stand with your feet shoulder-width apart. Place the barbell on your upper back. Bend your knees and lower your hips until your thighs are parallel to the floor. Push through your heels to return to the starting position.",
		PrimaryMuscles: []string{"Quadriceps", "Glutes", "Hamstrings"},
		ImageURL:       "https://images.pexels.com/photos/1954524/pexels-photo-1954524.jpeg",
	},
	{
		Name:           "Deadlifts",
		Category:       "Back",
		Equipment:      "Barbell",
		Description:    "Stand with your feet hip-width apart, toes under the barbell. Bend at the hips and knees, gripping the bar with hands shoulder-width apart. Keep your back straight as you lift the bar by extending your hips and knees.",
		PrimaryMuscles: []string{"Lower Back", "Glutes", "Hamstrings"},
		ImageURL:       "https://images.pexels.com/photos/1552249/pexels-photo-1552249.jpeg",
	},
	{
		Name:           "Pull-ups",
		Category:       "Back",
		Equipment:      "Pull-up Bar",
		Description:    "Hang from a pull-up bar with palms facing away from you. Pull your body up until your chin is above the bar. Lower your body back to the starting position.",
		PrimaryMuscles: []string{"Lats", "Biceps", "Middle Back"},
		ImageURL:       "https://images.pexels.com/photos/2294363/pexels-photo-2294363.jpeg",
	},
	{
		Name:           "Shoulder Press",
		Category:       "Shoulders",
		Equipment:      "Dumbbells",
		Description:    "Sit on a bench with back support. Hold the dumbbells at shoulder height with palms facing forward. Press the weights up until your arms are fully extended overhead. Lower the weights back to shoulder level.",
		PrimaryMuscles: []string{"Shoulders", "Triceps"},
		ImageURL:       "https://images.pexels.com/photos/1865131/pexels-photo-1865131.jpeg",
	},
	{
		Name:           "Bicep Curls",
		Category:       "Arms",
		Equipment:      "Dumbbells",
		Description:    "Stand with your feet shoulder-width apart, holding dumbbells at your sides with palms facing forward. Keeping your upper arms stationary, curl the weights while contracting your biceps. Lower back to the starting position.",
		PrimaryMuscles: []string{"Biceps"},
		ImageURL:       "https://images.pexels.com/photos/4162488/pexels-photo-4162488.jpeg",
	},
	{
		Name:           "Tricep Dips",
		Category:       "Arms",
		Equipment:      "Parallel Bars",
		Description:    "Grip parallel bars with your arms straight. Lower your body by bending your arms until your elbows are at 90 degrees. Push back up to the starting position.",
		PrimaryMuscles: []string{"Triceps", "Chest", "Shoulders"},
		ImageURL:       "https://images.pexels.com/photos/28076/pexels-photo.jpg",
	},
	{
		Name:           "Leg Press",
		Category:       "Legs",
		Equipment:      "Machine",
		Description:    "Sit in the leg press machine with your feet shoulder-width apart on the platform. Lower the platform by bending your knees until they form 90-degree angles. Push the platform back up by extending your legs.",
		PrimaryMuscles: []string{"Quadriceps", "Glutes", "Hamstrings"},
		ImageURL:       "https://images.pexels.com/photos/136404/pexels-photo-136404.jpeg",
	},
	{
		Name:           "Lat Pulldown",
		Category:       "Back",
		Equipment:      "Cable Machine",
		Description:    "Sit at a lat pulldown machine with a wide bar attached to the cable. Grasp the bar with a wide grip and pull it down to your upper chest. Slowly return to the starting position.",
		PrimaryMuscles: []string{"Lats", "Biceps", "Middle Back"},
		ImageURL:       "https://images.pexels.com/photos/1229356/pexels-photo-1229356.jpeg",
	},
	{
		Name:           "Plank",
		Category:       "Core",
		Equipment:      "None",
		Description:    "Get into a push-up position but rest on your forearms. Keep your body in a straight line from head to heels. Hold this position.",
		PrimaryMuscles: []string{"Abs", "Lower Back"},
		ImageURL:       "https://images.pexels.com/photos/1103242/pexels-photo-1103242.jpeg",
	},
	{
		Name:           "Russian Twists",
		Category:       "Core",
		Equipment:      "Medicine Ball",
		Description:    "Sit on the floor with your knees bent and feet lifted slightly off the ground. Hold a medicine ball with both hands. Twist your torso to the right, then to the left, touching the ball to the ground on each side.",
		PrimaryMuscles: []string{"Obliques", "Abs"},
		ImageURL:       "https://images.pexels.com/photos/866023/pexels-photo-866023.jpeg",
	},
	{
		Name:           "Lunges",
		Category:       "Legs",
		Equipment:      "None",
		Description:    "Stand with feet hip-width apart. Step forward with one leg and lower your body until both knees are bent at 90-degree angles. Push back up and repeat with the other leg.",
		PrimaryMuscles: []string{"Quadriceps", "Glutes", "Hamstrings"},
		ImageURL:       "https://images.pexels.com/photos/4162451/pexels-photo-4162451.jpeg",
	},
	{
		Name:           "Push-ups",
		Category:       "Chest",
		Equipment:      "None",
		Description:    "Start in a plank position with hands slightly wider than shoulder-width. Lower your body until your chest nearly touches the floor. Push your body back up to the starting position.",
		PrimaryMuscles: []string{"Chest", "Shoulders", "Triceps"},
		ImageURL:       "https://images.pexels.com/photos/176782/pexels-photo-176782.jpeg",
	},
	{
		Name:           "Treadmill Run",
		Category:       "Cardio",
		Equipment:      "Treadmill",
		Description:    "Set the treadmill to your desired speed and incline. Maintain proper running form with a slight forward lean, relaxed shoulders, and arms bent at 90 degrees.",
		PrimaryMuscles: []string{"Legs", "Core"},
		ImageURL:       "https://images.pexels.com/photos/1954524/pexels-photo-1954524.jpeg",
	},
	{
		Name:           "Jumping Jacks",
		Category:       "Cardio",
		Equipment:      "None",
		Description:    "Stand with your feet together and arms at your sides. Jump and spread your feet while raising your arms overhead. Jump again and return to the starting position.",
		PrimaryMuscles: []string{"Full Body"},
		ImageURL:       "https://images.pexels.com/photos/4162487/pexels-photo-4162487.jpeg",
	},
}

// Categories returns the fixed category names in display order.
func Categories() []string {
	return append([]string(nil), categories...)
}

// CanonicalCategory resolves a category name case-insensitively.
func CanonicalCategory(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, c := range categories {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

// Builtins returns a copy of the whole table.
func Builtins() []domain.ExerciseInfo {
	out := make([]domain.ExerciseInfo, len(builtins))
	for i, b := range builtins {
		out[i] = cloneInfo(b)
	}
	return out
}

// ByCategory returns the built-ins of one category, in table order.
func ByCategory(category string) []domain.ExerciseInfo {
	var out []domain.ExerciseInfo
	for _, b := range builtins {
		if b.Category == category {
			out = append(out, cloneInfo(b))
		}
	}
	return out
}

// Lookup finds a built-in by name, ignoring case.
func Lookup(name string) (domain.ExerciseInfo, bool) {
	name = strings.TrimSpace(name)
	for _, b := range builtins {
		if strings.EqualFold(b.Name, name) {
			return cloneInfo(b), true
		}
	}
	return domain.ExerciseInfo{}, false
}

// ImageFor returns the catalog image of a built-in, or "" for custom names.
func ImageFor(name string) string {
	if info, ok := Lookup(name); ok {
		return info.ImageURL
	}
	return ""
}

func cloneInfo(b domain.ExerciseInfo) domain.ExerciseInfo {
	b.PrimaryMuscles = append([]string(nil), b.PrimaryMuscles...)
	return b
}
