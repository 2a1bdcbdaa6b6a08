package quiz

import "github.com/rocketscienceinc/quiz-royale-backend/internal/entity"

var game1Questions = []entity.Question{
	{ID: "g1q1", Text: "Which planet is known as the Red Planet?", Options: []string{"Earth", "Mars", "Jupiter", "Saturn"}, Answer: "Mars"},
	{ID: "g1q2", Text: "What is the capital of Japan?", Options: []string{"Beijing", "Seoul", "Tokyo", "Bangkok"}, Answer: "Tokyo"},
	{ID: "g1q3", Text: "Who wrote 'Romeo and Juliet'?", Options: []string{"Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain"}, Answer: "William Shakespeare"},
	{ID: "g1q4", Text: "What is the largest ocean on Earth?", Options: []string{"Atlantic", "Indian", "Arctic", "Pacific"}, Answer: "Pacific"},
	{ID: "g1q5", Text: "What is the chemical symbol for gold?", Options: []string{"Au", "Ag", "G", "Go"}, Answer: "Au"},
	{ID: "g1q6", Text: "How many continents are there?", Options: []string{"5", "6", "7", "8"}, Answer: "7"},
	{ID: "g1q7", Text: "Who painted the Mona Lisa?", Options: []string{"Vincent van Gogh", "Pablo Picasso", "Leonardo da Vinci", "Claude Monet"}, Answer: "Leonardo da Vinci"},
	{ID: "g1q8", Text: "What is the hardest natural substance on Earth?", Options: []string{"Gold", "Iron", "Diamond", "Platinum"}, Answer: "Diamond"},
	{ID: "g1q9", Text: "Which country is known as the Land of the Rising Sun?", Options: []string{"China", "South Korea", "Japan", "Thailand"}, Answer: "Japan"},
	{ID: "g1q10", Text: "What is the currency of the United Kingdom?", Options: []string{"Euro", "Dollar", "Pound Sterling", "Yen"}, Answer: "Pound Sterling"},
}

var game2Questions = []entity.Question{
	{ID: "g2q1", Text: "What is 2 + 2 * 2?", Options: []string{"8", "6", "4", "2"}, Answer: "6"},
	{ID: "g2q2", Text: "Which gas do plants absorb from the atmosphere?", Options: []string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Hydrogen"}, Answer: "Carbon Dioxide"},
	{ID: "g2q3", Text: "In which year did the Titanic sink?", Options: []string{"1905", "1912", "1918", "1923"}, Answer: "1912"},
	{ID: "g2q4", Text: "What is the capital of Australia?", Options: []string{"Sydney", "Melbourne", "Canberra", "Perth"}, Answer: "Canberra"},
	{ID: "g2q5", Text: "Who was the first man to walk on the moon?", Options: []string{"Buzz Aldrin", "Yuri Gagarin", "Neil Armstrong", "Michael Collins"}, Answer: "Neil Armstrong"},
	{ID: "g2q6", Text: "What is the main ingredient in guacamole?", Options: []string{"Tomato", "Avocado", "Onion", "Pepper"}, Answer: "Avocado"},
	{ID: "g2q7", Text: "Which is the smallest prime number?", Options: []string{"0", "1", "2", "3"}, Answer: "2"},
	{ID: "g2q8", Text: "What does 'CPU' stand for?", Options: []string{"Central Processing Unit", "Computer Personal Unit", "Central Power Unit", "Core Processing Unit"}, Answer: "Central Processing Unit"},
	{ID: "g2q9", Text: "How many legs does a spider have?", Options: []string{"6", "8", "10", "12"}, Answer: "8"},
	{ID: "g2q10", Text: "What is the boiling point of water in Celsius?", Options: []string{"90°C", "100°C", "110°C", "120°C"}, Answer: "100°C"},
}

var game3Questions = []entity.Question{
	{ID: "g3q1", Text: "Which element has the atomic number 1?", Options: []string{"Helium", "Oxygen", "Hydrogen", "Carbon"}, Answer: "Hydrogen"},
	{ID: "g3q2", Text: "Who discovered penicillin?", Options: []string{"Marie Curie", "Albert Einstein", "Alexander Fleming", "Isaac Newton"}, Answer: "Alexander Fleming"},
	{ID: "g3q3", Text: "What is the longest river in the world?", Options: []string{"Amazon River", "Nile River", "Yangtze River", "Mississippi River"}, Answer: "Nile River"},
	{ID: "g3q4", Text: "Which country has the most pyramids?", Options: []string{"Egypt", "Mexico", "Sudan", "Peru"}, Answer: "Sudan"},
	{ID: "g3q5", Text: "What is the largest animal in the world?", Options: []string{"Elephant", "Blue Whale", "Giraffe", "Great White Shark"}, Answer: "Blue Whale"},
	{ID: "g3q6", Text: "What is the square root of 144?", Options: []string{"10", "11", "12", "13"}, Answer: "12"},
	{ID: "g3q7", Text: "Which artist cut off his own ear?", Options: []string{"Pablo Picasso", "Vincent van Gogh", "Salvador Dalí", "Claude Monet"}, Answer: "Vincent van Gogh"},
	{ID: "g3q8", Text: "What is the most spoken language in the world?", Options: []string{"English", "Mandarin Chinese", "Spanish", "Hindi"}, Answer: "Mandarin Chinese"},
	{ID: "g3q9", Text: "Which bone is the longest in the human body?", Options: []string{"Femur", "Humerus", "Tibia", "Fibula"}, Answer: "Femur"},
	{ID: "g3q10", Text: "What is the name of the galaxy we live in?", Options: []string{"Andromeda", "Triangulum", "Whirlpool", "Milky Way"}, Answer: "Milky Way"},
}
