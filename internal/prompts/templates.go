package prompts

// Template sources use stick (Twig-style) syntax. Each category template
// shares the same skeleton: identity block, search strategy, category focus,
// and the strict JSON-only response contract the extractor relies on.

const genericTemplate = `Extract comprehensive information about this product by searching MULTIPLE SOURCES and websites:

PRODUCT MPN: {{ mpn }}
MANUFACTURER: {{ manufacturer }}
CATEGORY & SUBCATEGORY: {{ cat_subcat }}
ATTRIBUTES TO EXTRACT: {{ attributes }}

MULTI-SOURCE SEARCH STRATEGY:
1. Search the manufacturer's official website first ({{ manufacturer }}.com) for authoritative specifications
2. Search at least 5 major distributors and retailers for this product
3. Locate PDF technical datasheets and installation manuals for complete specifications
4. Cross-reference information across all sources for accuracy

VERIFICATION REQUIREMENTS:
- Information comes from multiple independent sources
- Data specifically references the exact MPN {{ mpn }}
- All technical specifications include proper units of measurement
- No speculative information is included

RESPONSE FORMAT:
Return ONLY a single valid JSON object. Use double quotes for all keys and string
values, no trailing commas, and escape special characters in strings. For ANY
attribute where information cannot be definitively determined, use "" (empty
string) - NEVER phrases like "Information Not Available", "Unknown", or "Not
Specified". Return the JSON object with no additional text before or after.`

const electricalTemplate = `Extract comprehensive information about this electrical part by searching MULTIPLE SOURCES and websites:

PRODUCT MPN: {{ mpn }}
MANUFACTURER: {{ manufacturer }}
CATEGORY & SUBCATEGORY: {{ cat_subcat }}
ATTRIBUTES TO EXTRACT: {{ attributes }}

MULTI-SOURCE SEARCH STRATEGY:
1. Search the manufacturer's official website first ({{ manufacturer }}.com) for authoritative specifications
2. Search at least 5 major electrical distributors (Grainger, Home Depot, Lowe's, Eaton, Schneider Electric)
3. Locate PDF technical datasheets and installation manuals for complete specifications
4. Check specialized electrical forums for professional insights

MATERIAL IDENTIFICATION REQUIREMENTS:
1. Determine the definitive material composition (plastic, metal, copper, aluminum, etc.)
2. Find exact material specifications without qualifiers like "likely" or "probably"
3. Check material codes in specs: "AL" (aluminum), "Cu" (copper), "PVC", "ABS"
4. If the material cannot be definitively determined, use "" for the Material field

VERIFICATION REQUIREMENTS:
- Information comes from multiple independent sources
- Data specifically references the exact MPN {{ mpn }}
- Material type is definitively identified
- All technical specifications include proper units of measurement

RESPONSE FORMAT:
Return ONLY a single valid JSON object. Use double quotes for all keys and string
values, no trailing commas, and escape special characters in strings. For ANY
attribute where information cannot be definitively determined, use "" (empty
string) - NEVER phrases like "Information Not Available", "Unknown", or "Not
Specified". Return the JSON object with no additional text before or after.`

const hvacTemplate = `Extract comprehensive information about this HVAC component by searching MULTIPLE SOURCES and websites:

PRODUCT MPN: {{ mpn }}
MANUFACTURER: {{ manufacturer }}
CATEGORY & SUBCATEGORY: {{ cat_subcat }}
ATTRIBUTES TO EXTRACT: {{ attributes }}

MULTI-SOURCE SEARCH STRATEGY:
1. Search the manufacturer's official website first ({{ manufacturer }}.com) for authoritative specifications
2. Search at least 5 major HVAC distributors (Grainger, Ferguson, Johnstone Supply, Carrier, Trane)
3. Locate PDF technical datasheets, installation manuals, and engineering specifications
4. Check specialized HVAC forums and contractor resources

TECHNICAL SPECIFICATIONS FOCUS:
1. Find exact capacity/BTU/tonnage ratings with proper units
2. Determine precise electrical requirements (voltage, phase, amperage)
3. Identify refrigerant type and compatibility (R-410A, R-32, etc.)
4. Determine energy efficiency ratings (SEER, EER, HSPF) where applicable

VERIFICATION REQUIREMENTS:
- Information comes from multiple independent sources
- Data specifically references the exact MPN {{ mpn }}
- All technical specifications include proper units of measurement

RESPONSE FORMAT:
Return ONLY a single valid JSON object. Use double quotes for all keys and string
values, no trailing commas, and escape special characters in strings. For ANY
attribute where information cannot be definitively determined, use "" (empty
string) - NEVER phrases like "Information Not Available", "Unknown", or "Not
Specified". Return the JSON object with no additional text before or after.`

const plumbingTemplate = `Extract comprehensive information about this plumbing component by searching MULTIPLE SOURCES and websites:

PRODUCT MPN: {{ mpn }}
MANUFACTURER: {{ manufacturer }}
CATEGORY & SUBCATEGORY: {{ cat_subcat }}
ATTRIBUTES TO EXTRACT: {{ attributes }}

MULTI-SOURCE SEARCH STRATEGY:
1. Search the manufacturer's official website first ({{ manufacturer }}.com) for authoritative specifications
2. Search at least 5 major plumbing distributors (Ferguson, Grainger, Home Depot, Lowe's, SupplyHouse)
3. Locate PDF technical datasheets, installation manuals, and specification sheets
4. Check specialized plumbing forums and contractor resources

MATERIAL AND COMPATIBILITY FOCUS:
1. Determine the exact material composition (brass, copper, PVC, PEX, etc.)
2. Find precise connection types and sizes (NPT, compression, sweat, etc.)
3. Identify pressure and temperature ratings with proper units
4. Find certification information (NSF, ANSI, UPC, etc.)

VERIFICATION REQUIREMENTS:
- Information comes from multiple independent sources
- Data specifically references the exact MPN {{ mpn }}
- Material type is definitively identified
- All technical specifications include proper units of measurement

RESPONSE FORMAT:
Return ONLY a single valid JSON object. Use double quotes for all keys and string
values, no trailing commas, and escape special characters in strings. For ANY
attribute where information cannot be definitively determined, use "" (empty
string) - NEVER phrases like "Information Not Available", "Unknown", or "Not
Specified". Return the JSON object with no additional text before or after.`

const refrigerationTemplate = `Extract comprehensive information about this refrigeration component by searching MULTIPLE SOURCES and websites:

PRODUCT MPN: {{ mpn }}
MANUFACTURER: {{ manufacturer }}
CATEGORY & SUBCATEGORY: {{ cat_subcat }}
ATTRIBUTES TO EXTRACT: {{ attributes }}

MULTI-SOURCE SEARCH STRATEGY:
1. Search the manufacturer's official website first ({{ manufacturer }}.com) for authoritative specifications
2. Search at least 5 major refrigeration distributors (Grainger, Ferguson, Johnstone Supply, United Refrigeration)
3. Locate PDF technical datasheets, installation manuals, and engineering specifications
4. Check specialized refrigeration forums and contractor resources

TECHNICAL SPECIFICATIONS FOCUS:
1. Find exact capacity ratings with proper units
2. Determine precise electrical requirements (voltage, phase, amperage)
3. Identify refrigerant type and compatibility (R-134a, R-404A, R-290, etc.)
4. Determine temperature range and operating conditions

VERIFICATION REQUIREMENTS:
- Information comes from multiple independent sources
- Data specifically references the exact MPN {{ mpn }}
- All technical specifications include proper units of measurement

RESPONSE FORMAT:
Return ONLY a single valid JSON object. Use double quotes for all keys and string
values, no trailing commas, and escape special characters in strings. For ANY
attribute where information cannot be definitively determined, use "" (empty
string) - NEVER phrases like "Information Not Available", "Unknown", or "Not
Specified". Return the JSON object with no additional text before or after.`
