package insighting

// percent retorna part/whole em porcentagem; divisões por zero (ou base negativa) valem 0
func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part * 100 / whole
}
