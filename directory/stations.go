package directory

// Popular Indian railway stations, the default directory when no remote
// source is configured.
var stations = []Station{
	{Code: "PGT", Name: "Palakkad Town", City: "Palakkad", Region: "Kerala"},
	{Code: "KOTA", Name: "Kota Junction", City: "Kota", Region: "Rajasthan"},
	{Code: "BRC", Name: "Vadodara Junction", City: "Vadodara", Region: "Gujarat"},
	{Code: "NDLS", Name: "New Delhi", City: "Delhi", Region: "Delhi"},
	{Code: "CSTM", Name: "Mumbai CST", City: "Mumbai", Region: "Maharashtra"},
	{Code: "BCT", Name: "Mumbai Central", City: "Mumbai", Region: "Maharashtra"},
	{Code: "HWH", Name: "Howrah Junction", City: "Kolkata", Region: "West Bengal"},
	{Code: "MAS", Name: "Chennai Central", City: "Chennai", Region: "Tamil Nadu"},
	{Code: "SBC", Name: "Bangalore City", City: "Bangalore", Region: "Karnataka"},
	{Code: "JP", Name: "Jaipur Junction", City: "Jaipur", Region: "Rajasthan"},
	{Code: "ADI", Name: "Ahmedabad Junction", City: "Ahmedabad", Region: "Gujarat"},
	{Code: "LKO", Name: "Lucknow Junction", City: "Lucknow", Region: "Uttar Pradesh"},
	{Code: "PNBE", Name: "Patna Junction", City: "Patna", Region: "Bihar"},
	{Code: "BZA", Name: "Vijayawada Junction", City: "Vijayawada", Region: "Andhra Pradesh"},
	{Code: "SC", Name: "Secunderabad Junction", City: "Hyderabad", Region: "Telangana"},
	{Code: "CBE", Name: "Coimbatore Junction", City: "Coimbatore", Region: "Tamil Nadu"},
	{Code: "ERS", Name: "Ernakulam Junction", City: "Kochi", Region: "Kerala"},
	{Code: "TVC", Name: "Thiruvananthapuram Central", City: "Thiruvananthapuram", Region: "Kerala"},
	{Code: "QLN", Name: "Kollam Junction", City: "Kollam", Region: "Kerala"},
	{Code: "AGC", Name: "Agra Cantt", City: "Agra", Region: "Uttar Pradesh"},
	{Code: "CNB", Name: "Kanpur Central", City: "Kanpur", Region: "Uttar Pradesh"},
	{Code: "BSB", Name: "Varanasi Junction", City: "Varanasi", Region: "Uttar Pradesh"},
	{Code: "PUNE", Name: "Pune Junction", City: "Pune", Region: "Maharashtra"},
	{Code: "NGP", Name: "Nagpur Junction", City: "Nagpur", Region: "Maharashtra"},
	{Code: "RTM", Name: "Ratlam Junction", City: "Ratlam", Region: "Madhya Pradesh"},
	{Code: "UJN", Name: "Ujjain Junction", City: "Ujjain", Region: "Madhya Pradesh"},
	{Code: "ANND", Name: "Anand Junction", City: "Anand", Region: "Gujarat"},
	{Code: "ED", Name: "Erode Junction", City: "Erode", Region: "Tamil Nadu"},
	{Code: "MDU", Name: "Madurai Junction", City: "Madurai", Region: "Tamil Nadu"},
	{Code: "TPJ", Name: "Tiruchirappalli Junction", City: "Tiruchirappalli", Region: "Tamil Nadu"},
}
